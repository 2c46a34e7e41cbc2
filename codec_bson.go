package disk

import "go.mongodb.org/mongo-driver/bson"

// BSONCodec persists values as BSON documents via the official MongoDB
// driver. The payload must marshal to a document, not a bare scalar.
type BSONCodec struct{}

func (BSONCodec) Name() string { return "bson" }
func (BSONCodec) Ext() string  { return "bson" }

func (BSONCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

func (BSONCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
