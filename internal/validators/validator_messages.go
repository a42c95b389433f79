// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/models"
	"golang.org/x/mod/semver"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldType targets the sync type of a request.
	FieldType = "type"

	// FieldBookmarks targets the snapshot attached to a request; only local
	// syncs may carry one.
	FieldBookmarks = "bookmarks"

	// FieldBookmarkTree targets the URLs of every bookmark in a snapshot.
	FieldBookmarkTree = "bookmark_tree"

	// FieldNonEmpty requires a snapshot with at least one node.
	FieldNonEmpty = "non_empty"

	// FieldServiceURL targets the remote service URL of sync info.
	FieldServiceURL = "service_url"

	// FieldVersion targets the payload schema version of sync info.
	FieldVersion = "version"
)

type MessageValidator struct {
}

func NewMessageValidator() Validator {
	return &MessageValidator{}
}

func (v *MessageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncBookmarksMessage:
		return v.validateSyncBookmarksMessage(ctx, value)
	case *models.SyncBookmarksMessage:
		return v.validateSyncBookmarksMessage(ctx, *value)

	case models.SyncRequest:
		return v.validateSyncRequest(ctx, value, fields...)
	case *models.SyncRequest:
		return v.validateSyncRequest(ctx, *value, fields...)

	case models.RestoreBookmarksMessage:
		return v.validateRestoreMessage(ctx, value, fields...)
	case *models.RestoreBookmarksMessage:
		return v.validateRestoreMessage(ctx, *value, fields...)

	case models.EnableSyncMessage:
		return v.validateEnableMessage(ctx, value)
	case *models.EnableSyncMessage:
		return v.validateEnableMessage(ctx, *value)

	case models.SyncInfo:
		return v.validateSyncInfo(ctx, value, fields...)
	case *models.SyncInfo:
		return v.validateSyncInfo(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MessageValidator) validateSyncBookmarksMessage(ctx context.Context, msg models.SyncBookmarksMessage) error {
	// no sync means "check for updates"
	if msg.Sync == nil {
		return nil
	}
	return v.validateSyncRequest(ctx, *msg.Sync)
}

func (v *MessageValidator) validateSyncRequest(_ context.Context, req models.SyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldBookmarks, FieldBookmarkTree}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if !req.Type.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidSyncType, req.Type)
			}
		case FieldBookmarks:
			if req.Bookmarks != nil && req.Type != models.SyncTypeLocal {
				return ErrUnexpectedBookmarks
			}
		case FieldBookmarkTree:
			if err := validateTree(req.Bookmarks, ""); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MessageValidator) validateRestoreMessage(_ context.Context, msg models.RestoreBookmarksMessage, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNonEmpty, FieldBookmarkTree}
	}

	for _, f := range fields {
		switch f {
		case FieldNonEmpty:
			if len(msg.Bookmarks) == 0 {
				return ErrEmptyBookmarks
			}
		case FieldBookmarkTree:
			if err := validateTree(msg.Bookmarks, ""); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MessageValidator) validateEnableMessage(ctx context.Context, msg models.EnableSyncMessage) error {
	// re-enable the stored sync
	if msg.SyncInfo == nil {
		return nil
	}
	return v.validateSyncInfo(ctx, *msg.SyncInfo)
}

// validateSyncInfo checks the format of the optional fields. Missing id or
// password are reported by the engine as incomplete sync info.
func (v *MessageValidator) validateSyncInfo(_ context.Context, info models.SyncInfo, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldServiceURL, FieldVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldServiceURL:
			if info.ServiceURL != "" && !isAbsoluteURL(info.ServiceURL) {
				return fmt.Errorf("%w: %q", ErrInvalidServiceURL, info.ServiceURL)
			}
		case FieldVersion:
			if info.Version != "" && !semver.IsValid(config.CanonicalVersion(info.Version)) {
				return fmt.Errorf("%w: %q", ErrInvalidVersion, info.Version)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateTree checks every bookmark URL; folders have none.
func validateTree(tree []models.Bookmark, path string) error {
	for i, b := range tree {
		at := fmt.Sprintf("%s/%d", path, i)
		if !b.IsFolder() && !isAbsoluteURL(b.URL) {
			return fmt.Errorf("validation error at %s: %w: %q", at, ErrInvalidBookmarkURL, b.URL)
		}
		if err := validateTree(b.Children, at); err != nil {
			return err
		}
	}
	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}
