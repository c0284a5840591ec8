// Package botocore holds the read-only data model of a botocore service
// definition and the loader that decodes one from JSON. Shapes, members
// and operations are kept in schema-declared order.
package botocore

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
)

type XMLNamespace struct {
	URI string `json:"uri"`
}

type Metadata struct {
	APIVersion          string        `json:"apiVersion"`
	EndpointPrefix      string        `json:"endpointPrefix"`
	JSONVersion         string        `json:"jsonVersion"`
	Protocol            string        `json:"protocol" validate:"required,oneof=json query ec2 rest-json rest-xml"`
	ServiceAbbreviation string        `json:"serviceAbbreviation"`
	ServiceFullName     string        `json:"serviceFullName" validate:"required"`
	SignatureVersion    string        `json:"signatureVersion"`
	TargetPrefix        string        `json:"targetPrefix"`
	XMLNamespace        *XMLNamespace `json:"xmlNamespace"`
}

type HTTP struct {
	Method       string `json:"method"`
	RequestURI   string `json:"requestUri"`
	ResponseCode int    `json:"responseCode"`
}

type ShapeRef struct {
	Shape         string `json:"shape"`
	ResultWrapper string `json:"resultWrapper"`
	Documentation string `json:"documentation"`
}

type Operation struct {
	Name          string     `json:"name"`
	Documentation string     `json:"documentation"`
	HTTP          HTTP       `json:"http"`
	Input         *ShapeRef  `json:"input"`
	Output        *ShapeRef  `json:"output"`
	Errors        []ShapeRef `json:"errors"`
	Deprecated    bool       `json:"deprecated"`
}

type Service struct {
	Metadata      Metadata                `json:"metadata"`
	Documentation string                  `json:"documentation"`
	Operations    *OrderedMap[*Operation] `json:"operations"`
	Shapes        *OrderedMap[*Shape]     `json:"shapes"`
}

// ServiceName is the human-readable name used in the generated client
// documentation: the abbreviation when present, otherwise the full name.
func (s *Service) ServiceName() string {
	if s.Metadata.ServiceAbbreviation != "" {
		return s.Metadata.ServiceAbbreviation
	}
	return s.Metadata.ServiceFullName
}

// ServiceTypeName derives the identifier stem for the generated client
// and error types: vendor prefixes and non-alphanumerics are stripped
// from the service name.
func (s *Service) ServiceTypeName() string {
	name := s.ServiceName()
	name = strings.TrimPrefix(name, "Amazon ")
	name = strings.TrimPrefix(name, "AWS ")
	var b strings.Builder
	for _, r := range name {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (s *Service) ClientTypeName() string {
	return s.ServiceTypeName() + "Client"
}

// ErrorTypeName is the name of the error enum generated for the service.
func (s *Service) ErrorTypeName() string {
	return s.ServiceTypeName() + "Error"
}

func (s *Service) Shape(name string) (*Shape, bool) {
	if s.Shapes == nil {
		return nil, false
	}
	return s.Shapes.Get(name)
}

// ShapeTypeForMember resolves the kind of the shape a member points at.
func (s *Service) ShapeTypeForMember(m *Member) (ShapeType, bool) {
	if m == nil {
		return "", false
	}
	sh, ok := s.Shape(m.Shape)
	if !ok {
		return "", false
	}
	return sh.Type, true
}

var validate = validator.New()

// Load decodes and validates a service definition. The definition is
// immutable input for one generation run.
func Load(data []byte) (*Service, error) {
	var svc Service
	if err := json.Unmarshal(data, &svc); err != nil {
		return nil, fmt.Errorf("decode service definition: %w", err)
	}
	if err := validate.Struct(&svc); err != nil {
		return nil, fmt.Errorf("invalid service definition: %w", err)
	}
	if err := svc.checkShapeRefs(); err != nil {
		return nil, err
	}
	if svc.Operations != nil {
		svc.Operations.Each(func(name string, op *Operation) {
			if op.Name == "" {
				op.Name = name
			}
		})
	}
	return &svc, nil
}

func LoadFile(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read service definition: %w", err)
	}
	return Load(data)
}

// checkShapeRefs verifies that every shape name referenced by a member,
// list element, map key/value, or operation exists in the shape map.
func (s *Service) checkShapeRefs() error {
	if s.Shapes == nil {
		return nil
	}
	var err error
	check := func(from, target string) {
		if err != nil || target == "" {
			return
		}
		if _, ok := s.Shapes.Get(target); !ok {
			err = fmt.Errorf("%s references unknown shape %q", from, target)
		}
	}
	s.Shapes.Each(func(name string, shape *Shape) {
		if shape.Members != nil {
			shape.Members.Each(func(memberName string, m *Member) {
				check(name+"."+memberName, m.Shape)
			})
		}
		if shape.Member != nil {
			check(name, shape.Member.Shape)
		}
		if shape.Key != nil {
			check(name, shape.Key.Shape)
		}
		if shape.Value != nil {
			check(name, shape.Value.Shape)
		}
	})
	if s.Operations != nil {
		s.Operations.Each(func(name string, op *Operation) {
			if op.Input != nil {
				check("operation "+name, op.Input.Shape)
			}
			if op.Output != nil {
				check("operation "+name, op.Output.Shape)
			}
		})
	}
	return err
}
