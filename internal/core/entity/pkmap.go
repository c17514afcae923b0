package entity

import "github.com/google/uuid"

// PrimaryKeyMap remembers which model nodes received generated ids while
// being converted to entities, so that the ids can be copied back onto the
// caller's models once the unit of work is committed.
type PrimaryKeyMap struct {
	pending []pendingKey
}

type pendingKey struct {
	model  *string
	entity *string
}

func NewPrimaryKeyMap() *PrimaryKeyMap {
	return &PrimaryKeyMap{}
}

// assign gives the entity a final id when the model is transient.
func (m *PrimaryKeyMap) assign(model *string, entity *string) {
	if *model != "" {
		*entity = *model
		return
	}
	*entity = uuid.NewString()
	if m != nil {
		m.pending = append(m.pending, pendingKey{model: model, entity: entity})
	}
}

// ResolvePrimaryKeys copies generated entity ids onto their models.
func (m *PrimaryKeyMap) ResolvePrimaryKeys() {
	if m == nil {
		return
	}
	for _, k := range m.pending {
		*k.model = *k.entity
	}
	m.pending = nil
}
