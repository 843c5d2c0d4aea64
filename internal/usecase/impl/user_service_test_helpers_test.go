package impl

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"tube/config"
	"tube/internal/domain/entity"
	"tube/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Media: config.MediaConfig{
			AvatarFolder:  "avatars",
			CoverFolder:   "covers",
			MaxUploadSize: 5 << 20,
		},
	}
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:           "65f1a2b3c4d5e6f708192a3b",
		Username:     "alice",
		Email:        "alice@example.com",
		FullName:     "Alice Liddell",
		Avatar:       "https://cdn.example.com/avatars/a.png",
		PasswordHash: "hashed_password",
		RefreshToken: "stored-refresh",
		WatchHistory: []string{},
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestFile(name string) *service.MediaFile {
	return &service.MediaFile{
		Filename:    name,
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("data"),
	}
}
