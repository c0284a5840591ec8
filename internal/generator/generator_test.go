package generator

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ctennis/rusoto/internal/botocore"
)

func generate(t *testing.T, svc *botocore.Service) string {
	t.Helper()
	return string(GenerateSource(svc))
}

func assertContains(t *testing.T, src, want string) {
	t.Helper()
	if !strings.Contains(src, want) {
		t.Errorf("generated source missing %q", want)
	}
}

func assertNotContains(t *testing.T, src, unwanted string) {
	t.Helper()
	if strings.Contains(src, unwanted) {
		t.Errorf("generated source unexpectedly contains %q", unwanted)
	}
}

func TestDeclarationPerShapeKind(t *testing.T) {
	svc := testService("json")
	addShape(svc, "String", stringShape())
	addShape(svc, "Name", stringShape())
	addShape(svc, "Empty", structShape(nil))
	addShape(svc, "Thing", structShape(nil, member("Name", "Name")))
	addShape(svc, "ThingList", listShape("Thing"))
	addShape(svc, "ThingMap", mapShape("String", "Thing"))
	addShape(svc, "Data", &botocore.Shape{Type: botocore.ShapeTypeBlob})
	addShape(svc, "Flag", &botocore.Shape{Type: botocore.ShapeTypeBoolean})
	addShape(svc, "Ratio", &botocore.Shape{Type: botocore.ShapeTypeDouble})
	addShape(svc, "Factor", &botocore.Shape{Type: botocore.ShapeTypeFloat})
	addShape(svc, "Count", &botocore.Shape{Type: botocore.ShapeTypeInteger})
	addShape(svc, "Size", &botocore.Shape{Type: botocore.ShapeTypeLong})
	addShape(svc, "When", &botocore.Shape{Type: botocore.ShapeTypeTimestamp})

	src := generate(t, svc)

	assertContains(t, src, "pub struct Empty;")
	assertContains(t, src, "pub struct Thing {")
	assertContains(t, src, "pub type ThingList = Vec<Thing>;")
	assertContains(t, src, "pub type ThingMap = ::std::collections::HashMap<String, Thing>;")
	assertContains(t, src, "pub type Data = Vec<u8>;")
	assertContains(t, src, "pub type Flag = bool;")
	assertContains(t, src, "pub type Ratio = f64;")
	assertContains(t, src, "pub type Factor = f32;")
	assertContains(t, src, "pub type Count = i32;")
	assertContains(t, src, "pub type Size = i64;")
	assertContains(t, src, "pub type Name = String;")
	// the String shape maps onto the built-in, no alias
	assertNotContains(t, src, "pub type String")
}

func TestTimestampTypeIsProtocolSelected(t *testing.T) {
	for protocol, want := range map[string]string{
		"json":      "pub type When = f64;",
		"rest-json": "pub type When = f64;",
		"query":     "pub type When = String;",
		"rest-xml":  "pub type When = String;",
	} {
		svc := testService(protocol)
		addShape(svc, "When", &botocore.Shape{Type: botocore.ShapeTypeTimestamp})
		assertContains(t, generate(t, svc), want)
	}
}

func TestExceptionShapesGetNoDeclaration(t *testing.T) {
	svc := testService("json")
	addShape(svc, "String", stringShape())
	notFound := structShape(nil, member("Message", "String"))
	notFound.Exception = true
	addShape(svc, "ResourceNotFound", notFound)

	src := generate(t, svc)

	assertNotContains(t, src, "pub struct ResourceNotFound")
	assertContains(t, src, "ResourceNotFoundError(String),")
}

func TestDeprecatedMembersAreElided(t *testing.T) {
	svc := testService("json")
	addShape(svc, "String", stringShape())
	addShape(svc, "Thing", structShape(nil,
		member("Name", "String"),
		deprecatedMember("LegacyName", "String")))
	addOperation(svc, "PutThing", "Thing", "")

	src := generate(t, svc)

	assertContains(t, src, "pub name: Option<String>,")
	assertNotContains(t, src, "legacy_name")
}

func TestDeclarationsFollowSchemaOrder(t *testing.T) {
	svc := testService("json")
	addShape(svc, "Zebra", structShape(nil))
	addShape(svc, "Alpha", structShape(nil))

	src := generate(t, svc)

	zebra := strings.Index(src, "pub struct Zebra;")
	alpha := strings.Index(src, "pub struct Alpha;")
	if zebra < 0 || alpha < 0 {
		t.Fatal("expected both declarations")
	}
	if zebra > alpha {
		t.Error("declarations not in schema-declared order")
	}
}

func TestDocumentationIsEscaped(t *testing.T) {
	svc := testService("json")
	shape := structShape(nil)
	shape.Documentation = `say "hi" \ now`
	addShape(svc, "Thing", shape)

	assertContains(t, generate(t, svc), `#[doc="say \"hi\" \\ now"]`)
}

func TestProtocolPairings(t *testing.T) {
	p, e := generatorsFor("json")
	if _, ok := p.(jsonGenerator); !ok {
		t.Errorf("json protocol generator = %T", p)
	}
	if _, ok := e.(jsonErrorTypes); !ok {
		t.Errorf("json error types = %T", e)
	}

	p, e = generatorsFor("rest-json")
	if _, ok := p.(restJSONGenerator); !ok {
		t.Errorf("rest-json protocol generator = %T", p)
	}
	if _, ok := e.(jsonErrorTypes); !ok {
		t.Errorf("rest-json error types = %T", e)
	}

	p, e = generatorsFor("rest-xml")
	if _, ok := p.(restXMLGenerator); !ok {
		t.Errorf("rest-xml protocol generator = %T", p)
	}
	if _, ok := e.(xmlErrorTypes); !ok {
		t.Errorf("rest-xml error types = %T", e)
	}
}

func TestEC2SelectsTheQueryPair(t *testing.T) {
	pQuery, eQuery := generatorsFor("query")
	pEC2, eEC2 := generatorsFor("ec2")

	if reflect.TypeOf(pQuery) != reflect.TypeOf(pEC2) {
		t.Errorf("ec2 protocol generator %T differs from query %T", pEC2, pQuery)
	}
	if reflect.TypeOf(eQuery) != reflect.TypeOf(eEC2) {
		t.Errorf("ec2 error types %T differs from query %T", eEC2, eQuery)
	}
}

func TestUnknownProtocolIsFatal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unknown protocol")
		}
	}()
	generatorsFor("soap")
}

func TestUnknownShapeKindIsFatal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unknown shape kind")
		}
	}()
	svc := testService("json")
	addShape(svc, "Wat", &botocore.Shape{Type: "decimal"})
	GenerateSource(svc)
}

// The end-to-end shape of a small JSON service: request struct with a
// required bare field and an escaped optional field, response struct,
// client struct, error enum with only the fallback variants.
func TestGenerateJSONService(t *testing.T) {
	svc := testService("json")
	addShape(svc, "String", stringShape())
	addShape(svc, "GetThingRequest", structShape([]string{"Id"},
		member("Id", "String"),
		member("Type", "String")))
	addShape(svc, "GetThingResult", structShape([]string{"Value"},
		member("Value", "String")))
	addOperation(svc, "GetThing", "GetThingRequest", "GetThingResult")

	src := generate(t, svc)

	// request: serialized only
	assertContains(t, src, "#[derive(Default, Debug, Clone, Serialize)]\npub struct GetThingRequest {")
	assertContains(t, src, "pub id: String,")
	assertContains(t, src, "pub type_: Option<String>,")
	assertContains(t, src, `#[serde(rename="Id")]`)
	assertContains(t, src, `#[serde(rename="Type")]`)
	// the aws_ rename branch stays dormant: field translation already
	// escaped the keyword
	assertNotContains(t, src, "aws_type")

	// response: deserialized only
	assertContains(t, src, "#[derive(Default, Debug, Clone, Deserialize)]\npub struct GetThingResult {")
	assertContains(t, src, "pub value: String,")

	// client with the fixed three-field shape and constructor order
	assertContains(t, src, "pub struct ThingsClient<P, D> where P: ProvideAwsCredentials, D: DispatchSignedRequest {")
	assertContains(t, src, "credentials_provider: P,")
	assertContains(t, src, "region: region::Region,")
	assertContains(t, src, "dispatcher: D,")
	assertContains(t, src, "pub fn new(request_dispatcher: D, credentials_provider: P, region: region::Region) -> Self {")

	// one method per operation, returning the dispatch future
	assertContains(t, src, "pub fn get_thing(&self, input: &GetThingRequest) -> RusotoFuture<GetThingResult, ThingsError> {")
	assertContains(t, src, `request.add_header("x-amz-target", "Things_20250101.GetThing");`)

	// error enum: no exception shapes, fallbacks only
	assertContains(t, src, "pub enum ThingsError {")
	assertContains(t, src, "HttpDispatch(HttpDispatchError),")
	assertContains(t, src, "Credentials(CredentialsError),")
	assertContains(t, src, "Unknown(String),")
	assertNotContains(t, src, "Error(String),")

	// generated test module consumes the built client
	assertContains(t, src, "mod protocol_tests {")
	assertContains(t, src, "ThingsClient::new(dispatcher, MockCredentialsProvider, Region::UsEast1)")
}

func TestGenerateQueryService(t *testing.T) {
	svc := testService("query")
	addShape(svc, "String", stringShape())
	addShape(svc, "GetThingRequest", structShape([]string{"Id"},
		member("Id", "String"),
		member("Tags", "TagList")))
	addShape(svc, "TagList", listShape("String"))
	addShape(svc, "GetThingResult", structShape(nil, member("Value", "String")))
	addOperation(svc, "GetThing", "GetThingRequest", "GetThingResult")

	src := generate(t, svc)

	// no serde on the query protocol
	assertContains(t, src, "#[derive(Default, Debug, Clone)]\npub struct GetThingRequest {")
	assertNotContains(t, src, "Serialize)]")
	assertNotContains(t, src, "#[serde")

	// params-based serializers for input-reachable shapes
	assertContains(t, src, "struct GetThingRequestSerializer;")
	assertContains(t, src, "struct TagListSerializer;")
	assertContains(t, src, `params.put("Action", "GetThing");`)
	assertContains(t, src, `params.put("Version", "2025-01-01");`)
	assertContains(t, src, `GetThingRequestSerializer::serialize(&mut params, "", input);`)

	// stack deserializers for output-reachable shapes
	assertContains(t, src, "struct GetThingResultDeserializer;")
	assertContains(t, src, `GetThingResultDeserializer::deserialize("GetThingResult", &mut stack)?;`)
}

func TestGenerateRestJSONService(t *testing.T) {
	svc := testService("rest-json")
	addShape(svc, "String", stringShape())
	addShape(svc, "GetThingRequest", structShape([]string{"Id"}, member("Id", "String")))
	addShape(svc, "GetThingResult", structShape(nil, member("Value", "String")))
	op := addOperation(svc, "GetThing", "GetThingRequest", "GetThingResult")
	op.HTTP = botocore.HTTP{Method: "GET", RequestURI: "/things/{Id}"}

	src := generate(t, svc)

	assertContains(t, src, `let request_uri = format!("/things/{id}", id = input.id);`)
	assertContains(t, src, `SignedRequest::new("GET", "things", &self.region, &request_uri);`)
	// GET carries no body
	assertNotContains(t, src, "serde_json::to_vec(input)")
}

func TestGenerateRestXMLService(t *testing.T) {
	svc := testService("rest-xml")
	addShape(svc, "String", stringShape())
	addShape(svc, "PutThingRequest", structShape([]string{"Name"}, member("Name", "String")))
	op := addOperation(svc, "PutThing", "PutThingRequest", "")
	op.HTTP = botocore.HTTP{Method: "PUT", RequestURI: "/things"}

	src := generate(t, svc)

	assertContains(t, src, "pub struct PutThingRequestSerializer;")
	assertContains(t, src, "EventWriter::new(&mut payload)")
	assertContains(t, src, `PutThingRequestSerializer::serialize(&mut xml_writer, "PutThingRequest", input).unwrap();`)
}

func TestGenerateWritesDestination(t *testing.T) {
	svc := testService("json")
	addShape(svc, "String", stringShape())

	path := filepath.Join(t.TempDir(), "generated.rs")
	if err := Generate(svc, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "DO NOT EDIT") {
		t.Error("generated file missing banner")
	}
}

func TestGenerateReturnsDestinationErrors(t *testing.T) {
	svc := testService("json")

	err := Generate(svc, filepath.Join(t.TempDir(), "missing", "generated.rs"))
	if err == nil {
		t.Fatal("expected error for uncreatable destination")
	}
	if !strings.Contains(err.Error(), "create") {
		t.Errorf("unexpected error: %v", err)
	}
}
