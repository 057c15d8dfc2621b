package model

const (
	SettingLibraryID = "library_id"
	SettingAccessKey = "access_key"
)

// SettingDefaults are returned for keys that were never written.
var SettingDefaults = map[string]string{
	SettingLibraryID: "",
	SettingAccessKey: "",
}
