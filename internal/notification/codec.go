// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package notification

import (
	"bytes"
	"encoding/json"

	"grimm.is/flywatch/internal/errors"
)

// envelope is the wire form of an Event: {"kind": "...", "event": {...}}.
type envelope struct {
	Kind  Kind            `json:"kind"`
	Event json.RawMessage `json:"event"`
}

// MarshalEvent encodes ev with its kind tag.
func MarshalEvent(ev Event) ([]byte, error) {
	if ev == nil {
		return nil, errors.New(errors.KindValidation, "nil event")
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "encode event")
	}
	return json.Marshal(envelope{Kind: ev.Kind(), Event: body})
}

// UnmarshalEvent decodes a tagged event. Unknown kinds, unknown fields and
// negative or oversized counts are validation errors.
func UnmarshalEvent(data []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, errors.KindValidation, "decode event envelope")
	}
	if len(env.Event) == 0 {
		return nil, errors.Attr(errors.New(errors.KindValidation, "missing event body"), "kind", env.Kind)
	}

	var (
		ev  Event
		err error
	)
	switch env.Kind {
	case KindPacketsThresholdExceeded:
		var e PacketsThresholdExceeded
		err = decodeStrict(env.Event, &e)
		ev = e
	case KindBytesThresholdExceeded:
		var e BytesThresholdExceeded
		err = decodeStrict(env.Event, &e)
		ev = e
	case KindFavoriteTransmitted:
		var e FavoriteTransmitted
		err = decodeStrict(env.Event, &e)
		ev = e
	default:
		return nil, errors.Attr(errors.Errorf(errors.KindValidation, "unknown event kind %q", env.Kind), "kind", env.Kind)
	}
	if err != nil {
		return nil, errors.Attr(errors.Wrap(err, errors.KindValidation, "decode event"), "kind", env.Kind)
	}
	return ev, nil
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
