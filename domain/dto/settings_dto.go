package dto

// SettingsRequest is bound from PUT /settings and the settings CLI
type SettingsRequest struct {
	LibraryID *string `json:"library_id"`
	AccessKey *string `json:"access_key"`
}

// SettingsResponse never carries the raw access key
type SettingsResponse struct {
	LibraryID      string `json:"library_id"`
	AccessKey      string `json:"access_key"`
	HasAccessKey   bool   `json:"has_access_key"`
	InsertTemplate string `json:"insert_template"`
}
