package services

import (
	"context"
	"io"

	"github.com/sbilibin2017/gw-parent-profile/internal/logger"
	"github.com/sbilibin2017/gw-parent-profile/internal/models"
)

// PhotoStore persists profile photos and returns their location.
type PhotoStore interface {
	Save(ctx context.Context, parentID int64, filename string, content io.Reader) (string, error)
}

// PhotoUpload is an uploaded profile photo.
type PhotoUpload struct {
	Filename string
	Content  io.Reader
}

// ProfileService reads and edits a parent's own profile.
type ProfileService struct {
	reader ParentReader
	writer ParentWriter
	photos PhotoStore
}

// NewProfileService creates a new ProfileService.
func NewProfileService(reader ParentReader, writer ParentWriter, photos PhotoStore) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
		photos: photos,
	}
}

// UpdateProfile applies patch to the caller's own profile and, when photo is
// set, stores it and records its location.
func (s *ProfileService) UpdateProfile(ctx context.Context, callerID int64, patch models.ParentPatch, photo *PhotoUpload) (*models.Parent, error) {
	if callerID != patch.ID {
		logger.Log.Warnw("profile update forbidden", "caller_id", callerID, "target_id", patch.ID)
		return nil, ErrForbidden
	}

	parent, err := s.reader.GetByID(ctx, patch.ID)
	if err != nil {
		logger.Log.Errorw("failed to get parent", "parent_id", patch.ID, "error", err)
		return nil, err
	}
	if parent == nil {
		return nil, ErrParentNotFound
	}

	patch.Apply(parent)

	if photo != nil {
		location, err := s.photos.Save(ctx, parent.ID, photo.Filename, photo.Content)
		if err != nil {
			logger.Log.Errorw("failed to store profile photo", "parent_id", parent.ID, "error", err)
			return nil, err
		}
		parent.ProfilePhoto = &location
	}

	updated, err := s.writer.Update(ctx, parent)
	if err != nil {
		logger.Log.Errorw("failed to update parent", "parent_id", parent.ID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrParentNotFound
	}
	return updated, nil
}

// GetParent returns the caller's own parent record.
func (s *ProfileService) GetParent(ctx context.Context, callerID, id int64) (*models.Parent, error) {
	if callerID != id {
		logger.Log.Warnw("profile read forbidden", "caller_id", callerID, "target_id", id)
		return nil, ErrForbidden
	}

	parent, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get parent", "parent_id", id, "error", err)
		return nil, err
	}
	if parent == nil {
		return nil, ErrParentNotFound
	}
	return parent, nil
}
