package generator

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/njchilds90/nadlogar/render"
)

// Instance is one accepted exercise. It is immutable; accessors hand out
// copies.
type Instance struct {
	id          uuid.UUID
	kind        string
	seed        int64
	attempts    int
	fields      render.Fields
	instruction string
	solution    string
}

func (in *Instance) ID() uuid.UUID         { return in.id }
func (in *Instance) Kind() string          { return in.kind }
func (in *Instance) Seed() int64           { return in.seed }
func (in *Instance) Attempts() int         { return in.attempts }
func (in *Instance) Fields() render.Fields { return in.fields.Clone() }
func (in *Instance) Instruction() string   { return in.instruction }
func (in *Instance) Solution() string      { return in.solution }

// Field returns one rendered value.
func (in *Instance) Field(name string) (string, bool) {
	v, ok := in.fields[name]
	return v, ok
}

// Missing lists template placeholders without a field. An empty result means
// both templates can be filled.
func (in *Instance) Missing() []string {
	return append(render.Missing(in.instruction, in.fields), render.Missing(in.solution, in.fields)...)
}

// Preview returns both templates with every placeholder filled.
func (in *Instance) Preview() (instruction, solution string) {
	return render.Fill(in.instruction, in.fields), render.Fill(in.solution, in.fields)
}

// instanceView is the serialized form.
type instanceView struct {
	ID          string            `json:"id" yaml:"id"`
	Kind        string            `json:"kind" yaml:"kind"`
	Seed        int64             `json:"seed" yaml:"seed"`
	Attempts    int               `json:"attempts" yaml:"attempts"`
	Instruction string            `json:"instruction" yaml:"instruction"`
	Solution    string            `json:"solution" yaml:"solution"`
	Fields      map[string]string `json:"fields" yaml:"fields"`
}

func (in *Instance) view() instanceView {
	return instanceView{
		ID:          in.id.String(),
		Kind:        in.kind,
		Seed:        in.seed,
		Attempts:    in.attempts,
		Instruction: in.instruction,
		Solution:    in.solution,
		Fields:      in.fields.Clone(),
	}
}

func (in *Instance) MarshalJSON() ([]byte, error) { return json.Marshal(in.view()) }

// MarshalYAML implements yaml.Marshaler.
func (in *Instance) MarshalYAML() (interface{}, error) { return in.view(), nil }
