package generator

import (
	"github.com/ctennis/rusoto/internal/botocore"
	"github.com/ctennis/rusoto/internal/writer"
)

// The error enum for a service has one variant per exception shape plus
// three protocol-independent fallbacks: HTTP dispatch failure,
// credentials failure, and an unrecognized response. The two generator
// variants share the enum shape and differ only in how an error
// response body is parsed into it.

type jsonErrorTypes struct{}

func (jsonErrorTypes) generateErrorTypes(w *writer.RustWriter, service *botocore.Service) {
	generateErrorEnum(w, service)
	generateJSONFromBody(w, service)
	generateErrorImpls(w, service)
}

type xmlErrorTypes struct{}

func (xmlErrorTypes) generateErrorTypes(w *writer.RustWriter, service *botocore.Service) {
	generateErrorEnum(w, service)
	generateXMLFromBody(w, service)
	generateErrorImpls(w, service)
}

// exceptionShapes returns the names of the exception-flagged shapes in
// schema-declared order.
func exceptionShapes(service *botocore.Service) []string {
	var names []string
	if service.Shapes == nil {
		return names
	}
	service.Shapes.Each(func(name string, shape *botocore.Shape) {
		if shape.Exception {
			names = append(names, name)
		}
	})
	return names
}

func generateErrorEnum(w *writer.RustWriter, service *botocore.Service) {
	enumName := service.ErrorTypeName()

	w.W("/// Errors returned by %s.\n", service.ServiceName())
	w.W("#[derive(Debug, PartialEq)]\n")
	w.W("pub enum %s {\n", enumName)
	for _, name := range exceptionShapes(service) {
		shape, _ := service.Shape(name)
		w.WriteDoc(shape.Documentation)
		w.W("%s(String),\n", errorTypeName(name))
	}
	w.W("/// An error occurred dispatching the HTTP request.\n")
	w.W("HttpDispatch(HttpDispatchError),\n")
	w.W("/// An error was encountered with AWS credentials.\n")
	w.W("Credentials(CredentialsError),\n")
	w.W("/// The server returned a response the client does not recognize.\n")
	w.W("Unknown(String),\n")
	w.W("}\n\n")
}

func generateErrorImpls(w *writer.RustWriter, service *botocore.Service) {
	enumName := service.ErrorTypeName()

	w.W("impl From<CredentialsError> for %s {\n", enumName)
	w.W("    fn from(err: CredentialsError) -> %s {\n", enumName)
	w.W("        %s::Credentials(err)\n", enumName)
	w.W("    }\n}\n\n")

	w.W("impl From<HttpDispatchError> for %s {\n", enumName)
	w.W("    fn from(err: HttpDispatchError) -> %s {\n", enumName)
	w.W("        %s::HttpDispatch(err)\n", enumName)
	w.W("    }\n}\n\n")

	w.W("impl fmt::Display for %s {\n", enumName)
	w.W("    fn fmt(&self, f: &mut fmt::Formatter) -> fmt::Result {\n")
	w.W("        write!(f, \"{}\", self.description())\n")
	w.W("    }\n}\n\n")

	w.W("impl Error for %s {\n", enumName)
	w.W("    fn description(&self) -> &str {\n")
	w.W("        match *self {\n")
	for _, name := range exceptionShapes(service) {
		w.W("            %s::%s(ref cause) => cause,\n", enumName, errorTypeName(name))
	}
	w.W("            %s::HttpDispatch(ref dispatch_error) => dispatch_error.description(),\n", enumName)
	w.W("            %s::Credentials(ref err) => err.description(),\n", enumName)
	w.W("            %s::Unknown(ref cause) => cause,\n", enumName)
	w.W("        }\n    }\n}\n\n")
}

// generateJSONFromBody parses the x-amz error envelope: the error kind
// arrives as the suffix of the "__type" field.
func generateJSONFromBody(w *writer.RustWriter, service *botocore.Service) {
	enumName := service.ErrorTypeName()

	w.W("impl %s {\n", enumName)
	w.W("    pub fn from_body(body: &str) -> %s {\n", enumName)
	w.W("        match from_str::<SerdeJsonValue>(body) {\n")
	w.W("            Ok(json) => {\n")
	w.W("                let raw_error_type = json.get(\"__type\").and_then(|e| e.as_str()).unwrap_or(\"Unknown\");\n")
	w.W("                let error_message = json.get(\"message\").and_then(|m| m.as_str()).unwrap_or(body);\n\n")
	w.W("                let pieces: Vec<&str> = raw_error_type.split(\"#\").collect();\n")
	w.W("                let error_type = pieces.last().expect(\"Expected error type\");\n\n")
	w.W("                match *error_type {\n")
	for _, name := range exceptionShapes(service) {
		w.W("                    \"%s\" => %s::%s(String::from(error_message)),\n", name, enumName, errorTypeName(name))
	}
	w.W("                    _ => %s::Unknown(String::from(body)),\n", enumName)
	w.W("                }\n")
	w.W("            }\n")
	w.W("            Err(_) => %s::Unknown(String::from(body)),\n", enumName)
	w.W("        }\n    }\n}\n\n")
}

// generateXMLFromBody parses the XML error envelope, matching on the
// <Code> element.
func generateXMLFromBody(w *writer.RustWriter, service *botocore.Service) {
	enumName := service.ErrorTypeName()

	w.W("impl %s {\n", enumName)
	w.W("    pub fn from_body(body: &str) -> %s {\n", enumName)
	w.W("        let reader = EventReader::new(body.as_bytes());\n")
	w.W("        let mut stack = XmlResponse::new(reader.into_iter().peekable());\n")
	w.W("        let _ = start_element(\"ErrorResponse\", &mut stack);\n")
	w.W("        match XmlErrorDeserializer::deserialize(\"Error\", &mut stack) {\n")
	w.W("            Ok(parsed_error) => match &parsed_error.code[..] {\n")
	for _, name := range exceptionShapes(service) {
		w.W("                \"%s\" => %s::%s(parsed_error.message),\n", name, enumName, errorTypeName(name))
	}
	w.W("                _ => %s::Unknown(String::from(body)),\n", enumName)
	w.W("            },\n")
	w.W("            Err(_) => %s::Unknown(String::from(body)),\n", enumName)
	w.W("        }\n    }\n}\n\n")
}
