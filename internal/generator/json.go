package generator

import (
	"strings"

	"github.com/ctennis/rusoto/internal/botocore"
	"github.com/ctennis/rusoto/internal/writer"
)

// jsonGenerator emits clients for the JSON-envelope protocol family:
// the whole request shape is serde-serialized into the body and the
// x-amz-target header routes the operation. No custom (de)serializers
// are needed, the derive attributes carry everything.
type jsonGenerator struct{}

func (jsonGenerator) generatePrelude(w *writer.RustWriter, service *botocore.Service) {
	w.W(`use signature::SignedRequest;
use serde_json;
use serde_json::from_str;
use serde_json::Value as SerdeJsonValue;

`)
}

func (jsonGenerator) timestampType() string {
	return "f64"
}

func (jsonGenerator) structAttributes(structName string, serialized, deserialized bool) string {
	return serdeDerives(serialized, deserialized)
}

func (jsonGenerator) generateSerializer(name string, shape *botocore.Shape, service *botocore.Service) string {
	return ""
}

func (jsonGenerator) generateDeserializer(name string, shape *botocore.Shape, service *botocore.Service) string {
	return ""
}

func (g jsonGenerator) generateMethods(w *writer.RustWriter, service *botocore.Service) {
	if service.Operations == nil {
		return
	}
	jsonVersion := service.Metadata.JSONVersion
	if jsonVersion == "" {
		jsonVersion = "1.1"
	}
	service.Operations.Each(func(opName string, op *botocore.Operation) {
		writeMethodSignature(w, service, op)

		w.W("let mut request = SignedRequest::new(\"POST\", \"%s\", &self.region, \"/\");\n", service.Metadata.EndpointPrefix)
		w.W("request.set_content_type(\"application/x-amz-json-%s\".to_owned());\n", jsonVersion)
		w.W("request.add_header(\"x-amz-target\", \"%s.%s\");\n", service.Metadata.TargetPrefix, op.Name)
		if op.Input != nil {
			w.W("let encoded = serde_json::to_string(input).unwrap();\n")
			w.W("request.set_payload(Some(encoded.into_bytes()));\n")
		} else {
			w.W("request.set_payload(Some(b\"{}\".to_vec()));\n")
		}
		w.W("\nself.dispatcher.dispatch(&self.credentials_provider, request, |response| {\n")
		w.W("    match response.status {\n")
		w.W("        StatusCode::Ok => {\n")
		if op.Output != nil {
			w.W("            Ok(serde_json::from_str::<%s>(&response.body).unwrap())\n", mutateTypeName(op.Output.Shape))
		} else {
			w.W("            Ok(())\n")
		}
		w.W("        }\n")
		w.W("        _ => Err(%s::from_body(&response.body)),\n", service.ErrorTypeName())
		w.W("    }\n")
		w.W("})\n")
		w.W("}\n\n")
	})
}

// serdeDerives builds the derive attribute for the serde-driven
// protocols. A struct reachable from neither direction keeps the
// minimal set.
func serdeDerives(serialized, deserialized bool) string {
	derives := []string{"Default", "Debug", "Clone"}
	if serialized {
		derives = append(derives, "Serialize")
	}
	if deserialized {
		derives = append(derives, "Deserialize")
	}
	return "#[derive(" + strings.Join(derives, ", ") + ")]"
}

// writeMethodSignature emits the doc comment and signature shared by
// every protocol: one method per operation, returning the two-phase
// dispatch future.
func writeMethodSignature(w *writer.RustWriter, service *botocore.Service, op *botocore.Operation) {
	w.WriteDoc(op.Documentation)
	outputType := "()"
	if op.Output != nil {
		outputType = mutateTypeName(op.Output.Shape)
	}
	if op.Input != nil {
		w.W("pub fn %s(&self, input: &%s) -> RusotoFuture<%s, %s> {\n",
			generateFieldName(op.Name), mutateTypeName(op.Input.Shape), outputType, service.ErrorTypeName())
	} else {
		w.W("pub fn %s(&self) -> RusotoFuture<%s, %s> {\n",
			generateFieldName(op.Name), outputType, service.ErrorTypeName())
	}
}
