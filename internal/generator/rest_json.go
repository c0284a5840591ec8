package generator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ctennis/rusoto/internal/botocore"
	"github.com/ctennis/rusoto/internal/writer"
)

// restJSONGenerator emits clients for the REST-JSON protocol: operation
// routing lives in the HTTP method and URI, bodies are serde JSON like
// the plain JSON protocol.
type restJSONGenerator struct{}

func (restJSONGenerator) generatePrelude(w *writer.RustWriter, service *botocore.Service) {
	w.W(`use param::{Params, ServiceParams};
use signature::SignedRequest;
use serde_json;
use serde_json::from_str;
use serde_json::Value as SerdeJsonValue;

`)
}

func (restJSONGenerator) timestampType() string {
	return "f64"
}

func (restJSONGenerator) structAttributes(structName string, serialized, deserialized bool) string {
	return serdeDerives(serialized, deserialized)
}

func (restJSONGenerator) generateSerializer(name string, shape *botocore.Shape, service *botocore.Service) string {
	return ""
}

func (restJSONGenerator) generateDeserializer(name string, shape *botocore.Shape, service *botocore.Service) string {
	return ""
}

func (g restJSONGenerator) generateMethods(w *writer.RustWriter, service *botocore.Service) {
	if service.Operations == nil {
		return
	}
	service.Operations.Each(func(opName string, op *botocore.Operation) {
		writeMethodSignature(w, service, op)
		writeRequestURI(w, op)

		w.W("let mut request = SignedRequest::new(\"%s\", \"%s\", &self.region, &request_uri);\n",
			requestMethod(op), service.Metadata.EndpointPrefix)
		w.W("request.set_content_type(\"application/x-amz-json-1.1\".to_owned());\n")
		if op.Input != nil && hasBody(op) {
			w.W("let encoded = Some(serde_json::to_vec(input).unwrap());\n")
			w.W("request.set_payload(encoded);\n")
		}
		w.W("\nself.dispatcher.dispatch(&self.credentials_provider, request, |response| {\n")
		w.W("    if response.status.is_success() {\n")
		if op.Output != nil {
			w.W("        Ok(serde_json::from_str::<%s>(&response.body).unwrap())\n", mutateTypeName(op.Output.Shape))
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

var uriPlaceholder = regexp.MustCompile(`\{([A-Za-z0-9_]+)\+?\}`)

// writeRequestURI binds the URI template of a REST operation: every
// {Placeholder} is filled from the matching input field.
func writeRequestURI(w *writer.RustWriter, op *botocore.Operation) {
	uri := op.HTTP.RequestURI
	if uri == "" {
		uri = "/"
	}
	matches := uriPlaceholder.FindAllStringSubmatch(uri, -1)
	if len(matches) == 0 || op.Input == nil {
		w.W("let request_uri = \"%s\".to_string();\n", uri)
		return
	}

	template := uri
	var args []string
	for _, m := range matches {
		field := generateFieldName(m[1])
		template = strings.Replace(template, m[0], "{"+field+"}", 1)
		args = append(args, fmt.Sprintf("%s = input.%s", field, field))
	}
	w.W("let request_uri = format!(\"%s\", %s);\n", template, strings.Join(args, ", "))
}

func requestMethod(op *botocore.Operation) string {
	if op.HTTP.Method == "" {
		return "POST"
	}
	return op.HTTP.Method
}

// hasBody reports whether the operation carries a request body. GET,
// HEAD and DELETE requests are URI/query only.
func hasBody(op *botocore.Operation) bool {
	switch requestMethod(op) {
	case "GET", "HEAD", "DELETE":
		return false
	}
	return true
}
