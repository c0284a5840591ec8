package generator

import (
	"github.com/ctennis/rusoto/internal/botocore"
	"github.com/ctennis/rusoto/internal/writer"
)

// restXMLGenerator emits clients for the REST-XML protocol: URI-routed
// operations with XML request payloads written by generated event-writer
// serializers and XML responses parsed by the shared stack deserializers.
type restXMLGenerator struct{}

func (restXMLGenerator) generatePrelude(w *writer.RustWriter, service *botocore.Service) {
	w.W(`use std::str::FromStr;
use std::io::Write;
use xml::EventReader;
use xml::EventWriter;
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

func (restXMLGenerator) timestampType() string {
	return "String"
}

func (restXMLGenerator) structAttributes(structName string, serialized, deserialized bool) string {
	return "#[derive(Default, Debug, Clone)]"
}

func (restXMLGenerator) generateSerializer(name string, shape *botocore.Shape, service *botocore.Service) string {
	return generateXMLSerializer(name, shape, service)
}

func (restXMLGenerator) generateDeserializer(name string, shape *botocore.Shape, service *botocore.Service) string {
	return generateXMLDeserializer(name, shape, service)
}

func (g restXMLGenerator) generateMethods(w *writer.RustWriter, service *botocore.Service) {
	if service.Operations == nil {
		return
	}
	service.Operations.Each(func(opName string, op *botocore.Operation) {
		writeMethodSignature(w, service, op)
		writeRequestURI(w, op)

		w.W("let mut request = SignedRequest::new(\"%s\", \"%s\", &self.region, &request_uri);\n",
			requestMethod(op), service.Metadata.EndpointPrefix)
		if op.Input != nil && hasBody(op) {
			inputType := mutateTypeName(op.Input.Shape)
			rootTag := inputType
			if shape, ok := service.Shape(op.Input.Shape); ok && shape.LocationName != "" {
				rootTag = shape.LocationName
			}
			w.W("let mut payload: Vec<u8> = Vec::new();\n")
			w.W("{\n")
			w.W("let mut xml_writer = EventWriter::new(&mut payload);\n")
			w.W("%sSerializer::serialize(&mut xml_writer, \"%s\", input).unwrap();\n", inputType, rootTag)
			w.W("}\n")
			w.W("request.set_payload(Some(payload));\n")
		}
		w.W("\nself.dispatcher.dispatch(&self.credentials_provider, request, |response| {\n")
		w.W("    if response.status.is_success() {\n")
		if op.Output != nil {
			resultTag := op.Output.ResultWrapper
			if resultTag == "" {
				resultTag = op.Name + "Result"
			}
			w.W("        let reader = EventReader::new_with_config(response.body.as_bytes(), ParserConfig::new().trim_whitespace(true));\n")
			w.W("        let mut stack = XmlResponse::new(reader.into_iter().peekable());\n")
			w.W("        let result = %sDeserializer::deserialize(\"%s\", &mut stack)?;\n", mutateTypeName(op.Output.Shape), resultTag)
			w.W("        Ok(result)\n")
		} else {
			w.W("        Ok(())\n")
		}
		w.W("    } else {\n")
		w.W("        Err(%s::from_body(&response.body))\n", service.ErrorTypeName())
		w.W("    }\n")
		w.W("})\n")
		w.W("}\n\n")
	})
}

// generateXMLSerializer emits an event-writer serializer for a shape.
func generateXMLSerializer(name string, shape *botocore.Shape, service *botocore.Service) string {
	w := writer.NewRustWriter()
	w.W("pub struct %sSerializer;\n", name)
	w.W("impl %sSerializer {\n", name)
	w.W("#[allow(unused_variables, warnings)]\n")
	w.W("pub fn serialize<W>(mut writer: &mut EventWriter<W>, name: &str, obj: &%s) -> Result<(), xml::writer::Error> where W: Write {\n", name)

	switch shape.Type {
	case botocore.ShapeTypeStructure:
		w.W("writer.write(xml::writer::XmlEvent::start_element(name))?;\n")
		if shape.Members != nil {
			shape.Members.Each(func(memberName string, member *botocore.Member) {
				if member.Deprecated {
					return
				}
				field := generateFieldName(memberName)
				tag := paramName(memberName, member)
				if shape.Required(memberName) {
					writeXMLElement(w, service, member, tag, "&obj."+field)
				} else {
					w.W("if let Some(ref value) = obj.%s {\n", field)
					writeXMLElement(w, service, member, tag, "value")
					w.W("}\n")
				}
			})
		}
		w.W("writer.write(xml::writer::XmlEvent::end_element())\n")
	case botocore.ShapeTypeList:
		elemTag := "member"
		if shape.Member != nil && shape.Member.LocationName != "" {
			elemTag = shape.Member.LocationName
		}
		w.W("writer.write(xml::writer::XmlEvent::start_element(name))?;\n")
		w.W("for element in obj {\n")
		writeXMLElement(w, service, shape.Member, elemTag, "element")
		w.W("}\n")
		w.W("writer.write(xml::writer::XmlEvent::end_element())\n")
	case botocore.ShapeTypeMap:
		w.W("writer.write(xml::writer::XmlEvent::start_element(name))?;\n")
		w.W("for (key, value) in obj {\n")
		w.W("writer.write(xml::writer::XmlEvent::start_element(\"entry\"))?;\n")
		w.W("writer.write(xml::writer::XmlEvent::start_element(\"key\"))?;\n")
		w.W("writer.write(xml::writer::XmlEvent::characters(&format!(\"{value}\", value = key)))?;\n")
		w.W("writer.write(xml::writer::XmlEvent::end_element())?;\n")
		writeXMLElement(w, service, shape.Value, "value", "value")
		w.W("writer.write(xml::writer::XmlEvent::end_element())?;\n")
		w.W("}\n")
		w.W("writer.write(xml::writer::XmlEvent::end_element())\n")
	default:
		w.W("writer.write(xml::writer::XmlEvent::start_element(name))?;\n")
		w.W("writer.write(xml::writer::XmlEvent::characters(&format!(\"{value}\", value = obj)))?;\n")
		w.W("writer.write(xml::writer::XmlEvent::end_element())\n")
	}

	w.W("}\n}\n")
	return w.String()
}

func writeXMLElement(w *writer.RustWriter, service *botocore.Service, member *botocore.Member, tag, valueExpr string) {
	shapeType, _ := service.ShapeTypeForMember(member)
	switch shapeType {
	case botocore.ShapeTypeStructure, botocore.ShapeTypeList, botocore.ShapeTypeMap:
		w.W("%sSerializer::serialize(&mut writer, \"%s\", %s)?;\n", mutateTypeName(member.Shape), tag, valueExpr)
	case botocore.ShapeTypeBlob:
		w.W("writer.write(xml::writer::XmlEvent::start_element(\"%s\"))?;\n", tag)
		w.W("writer.write(xml::writer::XmlEvent::characters(&String::from_utf8_lossy(%s)))?;\n", valueExpr)
		w.W("writer.write(xml::writer::XmlEvent::end_element())?;\n")
	default:
		w.W("writer.write(xml::writer::XmlEvent::start_element(\"%s\"))?;\n", tag)
		w.W("writer.write(xml::writer::XmlEvent::characters(&format!(\"{value}\", value = %s)))?;\n", valueExpr)
		w.W("writer.write(xml::writer::XmlEvent::end_element())?;\n")
	}
}
