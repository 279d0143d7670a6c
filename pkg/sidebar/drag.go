package sidebar

import (
	"encoding/json"
	"fmt"
)

// NodeTypeAction is the canvas node type created by dragging an action.
const NodeTypeAction = "action"

// ActionKindAPI is the default action node kind.
const ActionKindAPI = "api"

// DragData is carried into the created node's data.
type DragData struct {
	Label   string `json:"label"`
	Type    string `json:"type"`
	Premium bool   `json:"premium,omitempty"`
}

// DragPayload is handed to the canvas when an action row is dragged.
type DragPayload struct {
	Type string   `json:"type"`
	Data DragData `json:"data"`
}

// DragPayloadFor builds the payload for an action row. Only action rows can
// be dragged.
func DragPayloadFor(r Row) (DragPayload, error) {
	if r.Kind != RowAction {
		return DragPayload{}, fmt.Errorf("drag %s row %q: not an action", r.Kind, r.Label)
	}
	return DragPayload{
		Type: NodeTypeAction,
		Data: DragData{Label: r.Label, Type: ActionKindAPI, Premium: r.Premium},
	}, nil
}

// Encode marshals the payload for transfer.
func (p DragPayload) Encode() ([]byte, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode drag payload: %w", err)
	}
	return b, nil
}

// DecodeDragPayload parses a transferred payload.
func DecodeDragPayload(b []byte) (DragPayload, error) {
	var p DragPayload
	if err := json.Unmarshal(b, &p); err != nil {
		return DragPayload{}, fmt.Errorf("decode drag payload: %w", err)
	}
	if p.Type == "" {
		return DragPayload{}, fmt.Errorf("decode drag payload: missing type")
	}
	return p, nil
}
