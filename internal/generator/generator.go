// Package generator compiles a botocore service definition into the
// source of a typed Rust client. The wire protocol varies per service,
// so shape compilation is parameterized over a protocol generator that
// supplies preludes, operation methods, struct decorations, optional
// custom (de)serializer bodies, and the timestamp representation.
package generator

import (
	"fmt"
	"os"
	"strings"

	"github.com/ctennis/rusoto/internal/botocore"
	"github.com/ctennis/rusoto/internal/writer"
)

// protocolGenerator abstracts the generation of Rust code for the four
// wire protocol families.
type protocolGenerator interface {
	// generatePrelude emits the use statements the generated module
	// needs beyond the common prelude.
	generatePrelude(w *writer.RustWriter, service *botocore.Service)

	// generateMethods emits one method per operation, inside the
	// enclosing client impl block.
	generateMethods(w *writer.RustWriter, service *botocore.Service)

	// structAttributes returns the attributes decorating a struct
	// declaration, conditioned on its reachability.
	structAttributes(structName string, serialized, deserialized bool) string

	// generateSerializer and generateDeserializer return an optional
	// custom body for a shape; empty means the protocol relies on the
	// per-field attributes alone.
	generateSerializer(name string, shape *botocore.Shape, service *botocore.Service) string
	generateDeserializer(name string, shape *botocore.Shape, service *botocore.Service) string

	// timestampType is the Rust type used wherever a timestamp shape
	// is compiled.
	timestampType() string
}

type errorTypesGenerator interface {
	generateErrorTypes(w *writer.RustWriter, service *botocore.Service)
}

// generatorsFor selects the protocol and error-type generator pair for
// a metadata protocol value. The EC2 protocol is close enough to query
// that the query generator absorbs the wire differences; botocore uses
// a dedicated class, we do not need one.
//
// Panics on a protocol outside the supported set: an unsupported
// definition is a build-time condition, not a recoverable fault.
func generatorsFor(protocol string) (protocolGenerator, errorTypesGenerator) {
	switch protocol {
	case "json":
		return jsonGenerator{}, jsonErrorTypes{}
	case "query", "ec2":
		return queryGenerator{}, xmlErrorTypes{}
	case "rest-json":
		return restJSONGenerator{}, jsonErrorTypes{}
	case "rest-xml":
		return restXMLGenerator{}, xmlErrorTypes{}
	default:
		panic(fmt.Sprintf("unknown protocol %q", protocol))
	}
}

// Generate writes the full client source for a service definition to
// outputPath, creating or overwriting it. Destination I/O failures are
// returned to the caller; a corrupt or unsupported definition panics.
func Generate(service *botocore.Service, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outputPath, err)
	}
	if _, err := f.Write(GenerateSource(service)); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	return f.Close()
}

// GenerateSource renders the client source for a service: common
// prelude, protocol prelude, one declaration per shape, the error enum,
// the client struct with its methods, and the generated test module.
func GenerateSource(service *botocore.Service) []byte {
	protocol, errorTypes := generatorsFor(service.Metadata.Protocol)

	w := writer.NewRustWriter()
	generateCommonPrelude(w)
	protocol.generatePrelude(w, service)
	generateTypes(w, service, protocol)
	errorTypes.generateErrorTypes(w, service)
	generateClient(w, service, protocol)
	generateTests(w, service)
	return w.Frame()
}

func generateCommonPrelude(w *writer.RustWriter) {
	w.W(`#[allow(warnings)]
use hyper::Client;
use hyper::status::StatusCode;
use request::DispatchSignedRequest;
use region;
use future::RusotoFuture;

use std::fmt;
use std::error::Error;
use request::HttpDispatchError;
use rusoto_credential::{CredentialsError, ProvideAwsCredentials};

`)
}

func generateClient(w *writer.RustWriter, service *botocore.Service, protocol protocolGenerator) {
	typeName := service.ClientTypeName()
	w.W("/// A client for the %s API.\n", service.ServiceName())
	w.W("pub struct %s<P, D> where P: ProvideAwsCredentials, D: DispatchSignedRequest {\n", typeName)
	w.W("    credentials_provider: P,\n")
	w.W("    region: region::Region,\n")
	w.W("    dispatcher: D,\n")
	w.W("}\n\n")
	w.W("impl<P, D> %s<P, D> where P: ProvideAwsCredentials, D: DispatchSignedRequest {\n", typeName)
	w.W("    pub fn new(request_dispatcher: D, credentials_provider: P, region: region::Region) -> Self {\n")
	w.W("        %s {\n", typeName)
	w.W("            credentials_provider: credentials_provider,\n")
	w.W("            region: region,\n")
	w.W("            dispatcher: request_dispatcher,\n")
	w.W("        }\n")
	w.W("    }\n\n")
	protocol.generateMethods(w, service)
	w.W("}\n\n")
}

func generateTypes(w *writer.RustWriter, service *botocore.Service, protocol protocolGenerator) {
	serializedTypes, deserializedTypes := filterTypes(service)

	if service.Shapes == nil {
		return
	}
	service.Shapes.Each(func(name string, shape *botocore.Shape) {
		// error enums cover the exception shapes, no model type needed
		if shape.Exception {
			return
		}

		typeName := mutateTypeName(name)
		w.WriteDoc(shape.Documentation)

		serialized := serializedTypes[typeName]
		deserialized := deserializedTypes[typeName]

		if typeName != "String" {
			switch shape.Type {
			case botocore.ShapeTypeStructure:
				generateStruct(w, service, typeName, shape, serialized, deserialized, protocol)
			case botocore.ShapeTypeList:
				w.WriteTypeAlias(typeName, fmt.Sprintf("Vec<%s>", mutateTypeName(shape.MemberType())))
			case botocore.ShapeTypeMap:
				w.WriteTypeAlias(typeName, fmt.Sprintf("::std::collections::HashMap<%s, %s>",
					capitalizeFirst(shape.KeyType()), capitalizeFirst(shape.ValueType())))
			default:
				w.WriteTypeAlias(typeName, primitiveType(shape.Type, protocol.timestampType()))
			}
		}

		if deserialized {
			if body := protocol.generateDeserializer(typeName, shape, service); body != "" {
				w.W("%s\n", body)
			}
		}
		if serialized {
			if body := protocol.generateSerializer(typeName, shape, service); body != "" {
				w.W("%s\n", body)
			}
		}
	})
}

// primitiveType maps a primitive shape kind to its Rust representation.
// Panics on anything outside the closed kind set.
func primitiveType(shapeType botocore.ShapeType, timestampType string) string {
	switch shapeType {
	case botocore.ShapeTypeBlob:
		return "Vec<u8>"
	case botocore.ShapeTypeBoolean:
		return "bool"
	case botocore.ShapeTypeDouble:
		return "f64"
	case botocore.ShapeTypeFloat:
		return "f32"
	case botocore.ShapeTypeInteger:
		return "i32"
	case botocore.ShapeTypeLong:
		return "i64"
	case botocore.ShapeTypeString:
		return "String"
	case botocore.ShapeTypeTimestamp:
		return timestampType
	default:
		panic(fmt.Sprintf("unknown primitive type %q", shapeType))
	}
}

func generateStruct(w *writer.RustWriter, service *botocore.Service, name string, shape *botocore.Shape, serialized, deserialized bool, protocol protocolGenerator) {
	attributes := protocol.structAttributes(name, serialized, deserialized)
	if !shape.HasMembers() {
		w.W("%s\npub struct %s;\n\n", attributes, name)
		return
	}

	// serde attributes only matter when Serialize or Deserialize is derived
	needSerdeAttrs := strings.Contains(attributes, "erialize")

	w.W("%s\npub struct %s {\n", attributes, name)
	generateStructFields(w, service, shape, needSerdeAttrs)
	w.W("}\n\n")
}

func generateStructFields(w *writer.RustWriter, service *botocore.Service, shape *botocore.Shape, serdeAttrs bool) {
	shape.Members.Each(func(memberName string, member *botocore.Member) {
		if member.Deprecated {
			return
		}

		name := generateFieldName(memberName)
		w.WriteDoc(member.Documentation)

		typeName := mutateTypeName(member.Shape)

		if serdeAttrs {
			w.W("#[serde(rename=\"%s\")]\n", memberName)

			if shapeType, ok := service.ShapeTypeForMember(member); ok {
				if shapeType == botocore.ShapeTypeBlob {
					w.W("#[serde(\n")
					w.W("deserialize_with=\"::serialization::SerdeBlob::deserialize_blob\",\n")
					w.W("serialize_with=\"::serialization::SerdeBlob::serialize_blob\",\n")
					w.W("default,\n")
					w.W(")]\n")
				} else if shapeType == botocore.ShapeTypeBoolean && !shape.Required(memberName) {
					w.W("#[serde(skip_serializing_if=\"::std::option::Option::is_none\")]\n")
				}
			}
		}

		switch {
		case shape.Required(memberName):
			w.W("pub %s: %s,\n", name, typeName)
		case name == "type":
			w.W("pub aws_%s: Option<%s>,\n", name, typeName)
		default:
			w.W("pub %s: Option<%s>,\n", name, typeName)
		}
	})
}
