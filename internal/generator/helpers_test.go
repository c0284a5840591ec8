package generator

import "github.com/ctennis/rusoto/internal/botocore"

// test fixtures: hand-built services, shapes in explicit declared order.

func testService(protocol string) *botocore.Service {
	return &botocore.Service{
		Metadata: botocore.Metadata{
			APIVersion:          "2025-01-01",
			EndpointPrefix:      "things",
			JSONVersion:         "1.1",
			Protocol:            protocol,
			ServiceAbbreviation: "Things",
			ServiceFullName:     "Amazon Things Service",
			SignatureVersion:    "v4",
			TargetPrefix:        "Things_20250101",
		},
		Operations: &botocore.OrderedMap[*botocore.Operation]{},
		Shapes:     &botocore.OrderedMap[*botocore.Shape]{},
	}
}

func addShape(svc *botocore.Service, name string, shape *botocore.Shape) *botocore.Shape {
	svc.Shapes.Set(name, shape)
	return shape
}

func addOperation(svc *botocore.Service, name, inputShape, outputShape string) *botocore.Operation {
	op := &botocore.Operation{Name: name, HTTP: botocore.HTTP{Method: "POST", RequestURI: "/"}}
	if inputShape != "" {
		op.Input = &botocore.ShapeRef{Shape: inputShape}
	}
	if outputShape != "" {
		op.Output = &botocore.ShapeRef{Shape: outputShape}
	}
	svc.Operations.Set(name, op)
	return op
}

func stringShape() *botocore.Shape {
	return &botocore.Shape{Type: botocore.ShapeTypeString}
}

func structShape(required []string, members ...memberDef) *botocore.Shape {
	shape := &botocore.Shape{
		Type:         botocore.ShapeTypeStructure,
		RequiredList: required,
		Members:      &botocore.OrderedMap[*botocore.Member]{},
	}
	for _, m := range members {
		shape.Members.Set(m.name, &botocore.Member{
			Shape:      m.shape,
			Deprecated: m.deprecated,
		})
	}
	return shape
}

func listShape(elementShape string) *botocore.Shape {
	return &botocore.Shape{
		Type:   botocore.ShapeTypeList,
		Member: &botocore.Member{Shape: elementShape},
	}
}

func mapShape(keyShape, valueShape string) *botocore.Shape {
	return &botocore.Shape{
		Type:  botocore.ShapeTypeMap,
		Key:   &botocore.Member{Shape: keyShape},
		Value: &botocore.Member{Shape: valueShape},
	}
}

type memberDef struct {
	name       string
	shape      string
	deprecated bool
}

func member(name, shape string) memberDef {
	return memberDef{name: name, shape: shape}
}

func deprecatedMember(name, shape string) memberDef {
	return memberDef{name: name, shape: shape, deprecated: true}
}
