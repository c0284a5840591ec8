package botocore

// ShapeType is the kind discriminator of a shape definition. The
// vocabulary is closed: the generator aborts on anything outside it.
type ShapeType string

const (
	ShapeTypeStructure ShapeType = "structure"
	ShapeTypeList      ShapeType = "list"
	ShapeTypeMap       ShapeType = "map"
	ShapeTypeBlob      ShapeType = "blob"
	ShapeTypeBoolean   ShapeType = "boolean"
	ShapeTypeDouble    ShapeType = "double"
	ShapeTypeFloat     ShapeType = "float"
	ShapeTypeInteger   ShapeType = "integer"
	ShapeTypeLong      ShapeType = "long"
	ShapeTypeString    ShapeType = "string"
	ShapeTypeTimestamp ShapeType = "timestamp"
)

// Member is a reference from a structure member, list element, or map
// key/value slot to another shape.
type Member struct {
	Shape         string `json:"shape"`
	Documentation string `json:"documentation"`
	Deprecated    bool   `json:"deprecated"`
	Location      string `json:"location"`
	LocationName  string `json:"locationName"`
}

// Shape is one named data-type definition of the service schema.
type Shape struct {
	Type          ShapeType            `json:"type"`
	Documentation string               `json:"documentation"`
	Exception     bool                 `json:"exception"`
	Members       *OrderedMap[*Member] `json:"members"`
	RequiredList  []string             `json:"required"`
	Member        *Member              `json:"member"`
	Key           *Member              `json:"key"`
	Value         *Member              `json:"value"`
	LocationName  string               `json:"locationName"`
	Payload       string               `json:"payload"`
}

func (s *Shape) HasMembers() bool {
	return s.Members != nil && s.Members.Len() > 0
}

func (s *Shape) Required(memberName string) bool {
	for _, r := range s.RequiredList {
		if r == memberName {
			return true
		}
	}
	return false
}

// MemberType returns the element shape name of a list shape.
func (s *Shape) MemberType() string {
	if s.Member == nil {
		return ""
	}
	return s.Member.Shape
}

// KeyType and ValueType return the key/value shape names of a map shape.
func (s *Shape) KeyType() string {
	if s.Key == nil {
		return ""
	}
	return s.Key.Shape
}

func (s *Shape) ValueType() string {
	if s.Value == nil {
		return ""
	}
	return s.Value.Shape
}
