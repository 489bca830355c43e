package models

// WriteResult mirrors the acknowledgement shape the web client expects from
// every write endpoint. Semantic failures such as a duplicate booking are
// reported with Acknowledged false and a Message, still with status 200.
type WriteResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	InsertedID    string `json:"insertedId,omitempty"`
	MatchedCount  int64  `json:"matchedCount,omitempty"`
	ModifiedCount int64  `json:"modifiedCount,omitempty"`
	DeletedCount  int64  `json:"deletedCount,omitempty"`
	Message       string `json:"message,omitempty"`
}
