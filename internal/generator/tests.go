package generator

import (
	"github.com/iancoleman/strcase"

	"github.com/ctennis/rusoto/internal/botocore"
	"github.com/ctennis/rusoto/internal/writer"
)

// generateTests emits the test module appended to every generated
// client. It only consumes the already-built service and client
// handles; protocol fixtures live with the runtime crates.
func generateTests(w *writer.RustWriter, service *botocore.Service) {
	w.W(`#[cfg(test)]
mod protocol_tests {
    use super::*;
    use mock::{MockCredentialsProvider, MockRequestDispatcher};
    use region::Region;

    #[test]
    fn test_%s_client_is_constructable() {
        let dispatcher = MockRequestDispatcher::with_status(StatusCode::Ok);
        let client = %s::new(dispatcher, MockCredentialsProvider, Region::UsEast1);
        let _ = client;
    }
}
`, strcase.ToSnake(service.ServiceTypeName()), service.ClientTypeName())
}
