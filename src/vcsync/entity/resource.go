package entity

// Resource is one file visible in the backend's storage location. Timestamp
// is the backend's own formatting, carried opaquely.
type Resource struct {
	Filename  string `json:"filename" zap:"filename"`
	Path      string `json:"path" zap:"path"`
	Size      int64  `json:"size" zap:"size"`
	Timestamp string `json:"timestamp" zap:"timestamp"`
}

// UploadResult is the most recent upload outcome. It is not a Resource:
// upload confirmations carry no listing authority, so the resource
// collection is only ever refreshed by a full listing from the backend.
type UploadResult struct {
	Filename string `json:"filename" zap:"filename"`
	Success  bool   `json:"success" zap:"success"`
}
