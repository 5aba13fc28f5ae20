package trackline

import (
	"encoding/json"

	"github.com/trackline/trackline-go/internal/types"
)

// projectDescriptor binds the project collection to its wire format.
type projectDescriptor struct{}

func (projectDescriptor) Endpoint() string { return "/projects/" }

func (projectDescriptor) Parse(raw json.RawMessage) (Project, error) {
	return types.ParseProject(raw)
}
