package generator

import (
	"fmt"

	"github.com/ctennis/rusoto/internal/botocore"
	"github.com/ctennis/rusoto/internal/writer"
)

// generateXMLDeserializer emits a stack-based XML deserializer for one
// shape. The query and rest-xml generators share it: both protocols
// answer with the same element-per-member XML layout, only the
// enclosing envelope differs.
func generateXMLDeserializer(name string, shape *botocore.Shape, service *botocore.Service) string {
	w := writer.NewRustWriter()
	w.W("struct %sDeserializer;\n", name)
	w.W("impl %sDeserializer {\n", name)
	w.W("#[allow(unused_variables)]\n")
	w.W("fn deserialize<'a, T: Peek + Next>(tag_name: &str, stack: &mut T) -> Result<%s, XmlParseError> {\n", name)

	switch shape.Type {
	case botocore.ShapeTypeStructure:
		writeXMLStructBody(w, name, shape, service)
	case botocore.ShapeTypeList:
		writeXMLListBody(w, shape)
	case botocore.ShapeTypeMap:
		writeXMLMapBody(w, shape)
	default:
		writeXMLPrimitiveBody(w, shape.Type)
	}

	w.W("}\n}\n")
	return w.String()
}

func writeXMLStructBody(w *writer.RustWriter, name string, shape *botocore.Shape, service *botocore.Service) {
	w.W("start_element(tag_name, stack)?;\n\n")
	w.W("let mut obj = %s::default();\n\n", name)
	w.W("loop {\n")
	w.W("let next_event = match stack.peek() {\n")
	w.W("    Some(&XmlEvent::EndElement { .. }) => DeserializerNext::Close,\n")
	w.W("    Some(&XmlEvent::StartElement { ref name, .. }) => DeserializerNext::Element(name.local_name.to_owned()),\n")
	w.W("    _ => DeserializerNext::Skip,\n")
	w.W("};\n\n")
	w.W("match next_event {\n")
	w.W("DeserializerNext::Element(name) => {\n")
	w.W("match &name[..] {\n")
	if shape.Members != nil {
		shape.Members.Each(func(memberName string, member *botocore.Member) {
			if member.Deprecated {
				return
			}
			field := generateFieldName(memberName)
			tag := paramName(memberName, member)
			w.W("\"%s\" => {\n", tag)
			if shape.Required(memberName) {
				w.W("obj.%s = %sDeserializer::deserialize(\"%s\", stack)?;\n", field, mutateTypeName(member.Shape), tag)
			} else {
				w.W("obj.%s = Some(%sDeserializer::deserialize(\"%s\", stack)?);\n", field, mutateTypeName(member.Shape), tag)
			}
			w.W("}\n")
		})
	}
	w.W("_ => skip_tree(stack),\n")
	w.W("}\n")
	w.W("},\n")
	w.W("DeserializerNext::Close => break,\n")
	w.W("DeserializerNext::Skip => { stack.next(); },\n")
	w.W("}\n")
	w.W("}\n\n")
	w.W("end_element(tag_name, stack)?;\n\n")
	w.W("Ok(obj)\n")
}

func writeXMLListBody(w *writer.RustWriter, shape *botocore.Shape) {
	elemType := mutateTypeName(shape.MemberType())
	elemTag := "member"
	if shape.Member != nil && shape.Member.LocationName != "" {
		elemTag = shape.Member.LocationName
	}
	w.W("let mut obj = vec![];\n")
	w.W("start_element(tag_name, stack)?;\n\n")
	w.W("loop {\n")
	w.W("let next_event = match stack.peek() {\n")
	w.W("    Some(&XmlEvent::EndElement { .. }) => DeserializerNext::Close,\n")
	w.W("    Some(&XmlEvent::StartElement { ref name, .. }) => DeserializerNext::Element(name.local_name.to_owned()),\n")
	w.W("    _ => DeserializerNext::Skip,\n")
	w.W("};\n\n")
	w.W("match next_event {\n")
	w.W("DeserializerNext::Element(name) => {\n")
	w.W("if name == \"%s\" {\n", elemTag)
	w.W("obj.push(%sDeserializer::deserialize(\"%s\", stack)?);\n", elemType, elemTag)
	w.W("} else {\n")
	w.W("skip_tree(stack);\n")
	w.W("}\n")
	w.W("},\n")
	w.W("DeserializerNext::Close => break,\n")
	w.W("DeserializerNext::Skip => { stack.next(); },\n")
	w.W("}\n")
	w.W("}\n\n")
	w.W("end_element(tag_name, stack)?;\n\n")
	w.W("Ok(obj)\n")
}

func writeXMLMapBody(w *writer.RustWriter, shape *botocore.Shape) {
	keyType := mutateTypeName(shape.KeyType())
	valueType := mutateTypeName(shape.ValueType())
	w.W("let mut obj = ::std::collections::HashMap::new();\n")
	w.W("start_element(tag_name, stack)?;\n\n")
	w.W("while peek_at_name(stack)? == \"entry\" {\n")
	w.W("start_element(\"entry\", stack)?;\n")
	w.W("let key = %sDeserializer::deserialize(\"key\", stack)?;\n", keyType)
	w.W("let value = %sDeserializer::deserialize(\"value\", stack)?;\n", valueType)
	w.W("obj.insert(key, value);\n")
	w.W("end_element(\"entry\", stack)?;\n")
	w.W("}\n\n")
	w.W("end_element(tag_name, stack)?;\n\n")
	w.W("Ok(obj)\n")
}

func writeXMLPrimitiveBody(w *writer.RustWriter, shapeType botocore.ShapeType) {
	w.W("start_element(tag_name, stack)?;\n")
	switch shapeType {
	case botocore.ShapeTypeString, botocore.ShapeTypeTimestamp:
		w.W("let obj = characters(stack)?;\n")
	case botocore.ShapeTypeBlob:
		w.W("let obj = characters(stack)?.into_bytes();\n")
	case botocore.ShapeTypeBoolean:
		w.W("let obj = bool::from_str(characters(stack)?.as_ref()).unwrap();\n")
	case botocore.ShapeTypeInteger:
		w.W("let obj = i32::from_str(characters(stack)?.as_ref()).unwrap();\n")
	case botocore.ShapeTypeLong:
		w.W("let obj = i64::from_str(characters(stack)?.as_ref()).unwrap();\n")
	case botocore.ShapeTypeFloat:
		w.W("let obj = f32::from_str(characters(stack)?.as_ref()).unwrap();\n")
	case botocore.ShapeTypeDouble:
		w.W("let obj = f64::from_str(characters(stack)?.as_ref()).unwrap();\n")
	default:
		panic(fmt.Sprintf("unknown primitive type %q", shapeType))
	}
	w.W("end_element(tag_name, stack)?;\n\n")
	w.W("Ok(obj)\n")
}
