package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"bunny-video/domain/dto"
	"bunny-video/domain/model"
	"bunny-video/domain/repository"
	"bunny-video/infrastructure/utils"
)

// InsertTemplate is the tag the media browser inserts for a picked video.
const InsertTemplate = `[bunny_video id="%s"]`

type ISettingsUsecase interface {
	Credentials(ctx context.Context) (model.Credentials, error)
	Get(ctx context.Context) (dto.SettingsResponse, error)
	Save(ctx context.Context, req dto.SettingsRequest) (dto.SettingsResponse, error)
}

type SettingsUsecase struct {
	settings repository.ISettings
}

func NewSettingsUsecase(settings repository.ISettings) ISettingsUsecase {
	return &SettingsUsecase{settings: settings}
}

// Credentials reads the library id and access key; a missing or non-numeric id yields LibraryID 0.
func (u *SettingsUsecase) Credentials(ctx context.Context) (model.Credentials, error) {
	libraryID, err := u.settings.Get(ctx, model.SettingLibraryID)
	if err != nil {
		return model.Credentials{}, fmt.Errorf("read %s: %w", model.SettingLibraryID, err)
	}
	accessKey, err := u.settings.Get(ctx, model.SettingAccessKey)
	if err != nil {
		return model.Credentials{}, fmt.Errorf("read %s: %w", model.SettingAccessKey, err)
	}
	id, err := strconv.Atoi(utils.DigitsOnly(libraryID))
	if err != nil {
		id = 0
	}
	return model.Credentials{LibraryID: id, AccessKey: accessKey}, nil
}

func (u *SettingsUsecase) Get(ctx context.Context) (dto.SettingsResponse, error) {
	libraryID, err := u.settings.Get(ctx, model.SettingLibraryID)
	if err != nil {
		return dto.SettingsResponse{}, err
	}
	accessKey, err := u.settings.Get(ctx, model.SettingAccessKey)
	if err != nil {
		return dto.SettingsResponse{}, err
	}
	return dto.SettingsResponse{
		LibraryID:      libraryID,
		AccessKey:      MaskSecret(accessKey),
		HasAccessKey:   accessKey != "",
		InsertTemplate: InsertTemplate,
	}, nil
}

// Save sanitizes on write: the library id keeps digits only, the access key is plain text.
// Nil fields are left untouched.
func (u *SettingsUsecase) Save(ctx context.Context, req dto.SettingsRequest) (dto.SettingsResponse, error) {
	if req.LibraryID != nil {
		if err := u.settings.Set(ctx, model.SettingLibraryID, utils.DigitsOnly(*req.LibraryID)); err != nil {
			return dto.SettingsResponse{}, fmt.Errorf("save %s: %w", model.SettingLibraryID, err)
		}
	}
	if req.AccessKey != nil {
		if err := u.settings.Set(ctx, model.SettingAccessKey, utils.SanitizeText(*req.AccessKey)); err != nil {
			return dto.SettingsResponse{}, fmt.Errorf("save %s: %w", model.SettingAccessKey, err)
		}
	}
	return u.Get(ctx)
}

// MaskSecret keeps the last four runes of secrets longer than eight.
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	runes := []rune(secret)
	if len(runes) <= 8 {
		return strings.Repeat("*", 8)
	}
	return strings.Repeat("*", 8) + string(runes[len(runes)-4:])
}
