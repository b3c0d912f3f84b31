package models

// SessionResponse is returned by the session issue and logout routes
type SessionResponse struct {
	Success bool `json:"success"`
}

// RequestedResponse reports whether an email already requested a post
type RequestedResponse struct {
	Requested bool `json:"requested"`
}

// InsertResponse mirrors the driver acknowledgment for inserts
type InsertResponse struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

// UpdateResponse mirrors the driver acknowledgment for updates
type UpdateResponse struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResponse mirrors the driver acknowledgment for deletes
type DeleteResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// UploadSignatureResponse is returned by the thumbnail signature route
type UploadSignatureResponse struct {
	Timestamp string `json:"timestamp"`
	Signature string `json:"signature"`
}
