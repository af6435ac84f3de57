package entity

type UploadResult struct {
	Bucket   string `json:"bucket"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	Location string `json:"location"`
}
