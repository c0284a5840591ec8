package generator

import "github.com/ctennis/rusoto/internal/botocore"

// filterTypes computes the two reachability sets over the shape graph:
// shapes reachable from any operation input need serialization support,
// shapes reachable from any operation output need deserialization
// support. A shape may land in both. Keys are mutated type names, which
// is what the shape compiler looks up.
func filterTypes(service *botocore.Service) (serialized, deserialized map[string]bool) {
	serialized = map[string]bool{}
	deserialized = map[string]bool{}
	if service.Operations == nil {
		return
	}
	service.Operations.Each(func(_ string, op *botocore.Operation) {
		if op.Input != nil {
			collectShapes(service, op.Input.Shape, serialized)
		}
		if op.Output != nil {
			collectShapes(service, op.Output.Shape, deserialized)
		}
	})
	return
}

// collectShapes walks the graph from shapeName through structure
// members, list elements and map key/value slots. The accumulator
// doubles as the visited guard, so self- and mutually-referential
// shapes terminate.
func collectShapes(service *botocore.Service, shapeName string, acc map[string]bool) {
	name := mutateTypeName(shapeName)
	if acc[name] {
		return
	}
	acc[name] = true

	shape, ok := service.Shape(shapeName)
	if !ok {
		return
	}
	if shape.Members != nil {
		shape.Members.Each(func(_ string, m *botocore.Member) {
			collectShapes(service, m.Shape, acc)
		})
	}
	if shape.Member != nil {
		collectShapes(service, shape.Member.Shape, acc)
	}
	if shape.Key != nil {
		collectShapes(service, shape.Key.Shape, acc)
	}
	if shape.Value != nil {
		collectShapes(service, shape.Value.Shape, acc)
	}
}
