package generator

import (
	"github.com/ctennis/rusoto/internal/botocore"
	"github.com/ctennis/rusoto/internal/writer"
)

// queryGenerator emits clients for the Query protocol: inputs are
// flattened into form-encoded request parameters by generated
// serializers, responses are XML parsed by generated stack
// deserializers. The EC2 protocol rides on the same generator.
type queryGenerator struct{}

func (queryGenerator) generatePrelude(w *writer.RustWriter, service *botocore.Service) {
	w.W(`use std::str::FromStr;
use xml::EventReader;
use xml::reader::ParserConfig;
use xml::reader::XmlEvent;
use param::{Params, ServiceParams};
use signature::SignedRequest;
use xmlerror::*;
use xmlutil::{Next, Peek, XmlParseError, XmlResponse};
use xmlutil::{characters, end_element, start_element, skip_tree, peek_at_name};

enum DeserializerNext {
    Close,
    Skip,
    Element(String),
}

`)
}

func (queryGenerator) timestampType() string {
	return "String"
}

func (queryGenerator) structAttributes(structName string, serialized, deserialized bool) string {
	return "#[derive(Default, Debug, Clone)]"
}

func (queryGenerator) generateSerializer(name string, shape *botocore.Shape, service *botocore.Service) string {
	return generateParamsSerializer(name, shape, service)
}

func (queryGenerator) generateDeserializer(name string, shape *botocore.Shape, service *botocore.Service) string {
	return generateXMLDeserializer(name, shape, service)
}

func (g queryGenerator) generateMethods(w *writer.RustWriter, service *botocore.Service) {
	if service.Operations == nil {
		return
	}
	service.Operations.Each(func(opName string, op *botocore.Operation) {
		writeMethodSignature(w, service, op)

		w.W("let mut request = SignedRequest::new(\"POST\", \"%s\", &self.region, \"/\");\n", service.Metadata.EndpointPrefix)
		w.W("let mut params = Params::new();\n\n")
		w.W("params.put(\"Action\", \"%s\");\n", op.Name)
		w.W("params.put(\"Version\", \"%s\");\n", service.Metadata.APIVersion)
		if op.Input != nil {
			w.W("%sSerializer::serialize(&mut params, \"\", input);\n", mutateTypeName(op.Input.Shape))
		}
		w.W("request.set_params(params);\n")
		w.W("\nself.dispatcher.dispatch(&self.credentials_provider, request, |response| {\n")
		w.W("    match response.status {\n")
		w.W("        StatusCode::Ok => {\n")
		if op.Output != nil {
			wrapper := op.Output.ResultWrapper
			if wrapper == "" {
				wrapper = op.Name + "Result"
			}
			w.W("            let reader = EventReader::new_with_config(response.body.as_bytes(), ParserConfig::new().trim_whitespace(true));\n")
			w.W("            let mut stack = XmlResponse::new(reader.into_iter().peekable());\n")
			w.W("            start_element(\"%sResponse\", &mut stack)?;\n", op.Name)
			w.W("            let result = %sDeserializer::deserialize(\"%s\", &mut stack)?;\n", mutateTypeName(op.Output.Shape), wrapper)
			w.W("            Ok(result)\n")
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

// generateParamsSerializer emits a serializer flattening a shape into
// dotted form parameters, the Query wire convention.
func generateParamsSerializer(name string, shape *botocore.Shape, service *botocore.Service) string {
	w := writer.NewRustWriter()
	w.W("/// Serialize `%s` contents to a `SignedRequest`.\n", name)
	w.W("struct %sSerializer;\n", name)
	w.W("impl %sSerializer {\n", name)
	w.W("fn serialize(params: &mut Params, name: &str, obj: &%s) {\n", name)

	switch shape.Type {
	case botocore.ShapeTypeStructure:
		w.W("let mut prefix = name.to_string();\n")
		w.W("if prefix != \"\" { prefix.push_str(\".\"); }\n\n")
		if shape.Members != nil {
			shape.Members.Each(func(memberName string, member *botocore.Member) {
				if member.Deprecated {
					return
				}
				field := generateFieldName(memberName)
				keyExpr := "&format!(\"{}{}\", prefix, \"" + paramName(memberName, member) + "\")"
				if shape.Required(memberName) {
					writeParamLine(w, service, member, keyExpr, "&obj."+field)
				} else {
					w.W("if let Some(ref field_value) = obj.%s {\n", field)
					writeParamLine(w, service, member, keyExpr, "field_value")
					w.W("}\n")
				}
			})
		}
	case botocore.ShapeTypeList:
		w.W("for (index, element) in obj.iter().enumerate() {\n")
		w.W("let key = format!(\"{}.{}\", name, index + 1);\n")
		writeParamLine(w, service, shape.Member, "&key", "element")
		w.W("}\n")
	case botocore.ShapeTypeMap:
		w.W("for (index, (key, value)) in obj.iter().enumerate() {\n")
		w.W("params.put(&format!(\"{}.{}.key\", name, index + 1), &key.to_string());\n")
		writeParamLine(w, service, shape.Value, "&format!(\"{}.{}.value\", name, index + 1)", "value")
		w.W("}\n")
	default:
		w.W("params.put(name, &obj.to_string());\n")
	}

	w.W("}\n}\n")
	return w.String()
}

// writeParamLine emits one parameter assignment, dispatching on the
// kind of the shape the member points at: aggregates recurse into their
// own serializer, primitives are stringified in place.
func writeParamLine(w *writer.RustWriter, service *botocore.Service, member *botocore.Member, keyExpr, valueExpr string) {
	shapeType, _ := service.ShapeTypeForMember(member)
	switch shapeType {
	case botocore.ShapeTypeStructure, botocore.ShapeTypeList, botocore.ShapeTypeMap:
		w.W("%sSerializer::serialize(params, %s, %s);\n", mutateTypeName(member.Shape), keyExpr, valueExpr)
	case botocore.ShapeTypeBlob:
		w.W("params.put(%s, &String::from_utf8_lossy(%s));\n", keyExpr, valueExpr)
	default:
		w.W("params.put(%s, &%s.to_string());\n", keyExpr, valueExpr)
	}
}

// paramName is the wire name of a member: the explicit locationName
// when the schema provides one, the member name otherwise.
func paramName(memberName string, member *botocore.Member) string {
	if member.LocationName != "" {
		return member.LocationName
	}
	return memberName
}
