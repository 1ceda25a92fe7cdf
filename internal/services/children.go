package services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-parent-profile/internal/logger"
	"github.com/sbilibin2017/gw-parent-profile/internal/models"
)

// ChildReader defines read-only operations for children.
type ChildReader interface {
	GetByID(ctx context.Context, id int64) (*models.Child, error)
	List(ctx context.Context, filter models.ChildFilter) ([]models.Child, error)
}

// ChildWriter defines write operations for children.
type ChildWriter interface {
	Create(ctx context.Context, child models.ChildCreate) (*models.Child, error)
	Update(ctx context.Context, child *models.Child) (*models.Child, error)
}

// ChildService manages the children of the calling parent.
type ChildService struct {
	parents  ParentReader
	reader   ChildReader
	writer   ChildWriter
	notifier Notifier
}

// NewChildService creates a new ChildService.
func NewChildService(parents ParentReader, reader ChildReader, writer ChildWriter, notifier Notifier) *ChildService {
	return &ChildService{
		parents:  parents,
		reader:   reader,
		writer:   writer,
		notifier: notifier,
	}
}

// AddChild creates a child for the caller and alerts the administrator.
func (s *ChildService) AddChild(ctx context.Context, callerID int64, child models.ChildCreate) (*models.Child, error) {
	if callerID != child.ParentID {
		logger.Log.Warnw("add child forbidden", "caller_id", callerID, "parent_id", child.ParentID)
		return nil, ErrForbidden
	}

	child.Name = strings.TrimSpace(child.Name)
	if child.Name == "" {
		return nil, ErrChildNameRequired
	}
	child.DateOfBirth = models.StripZone(child.DateOfBirth)

	created, err := s.writer.Create(ctx, child)
	if err != nil {
		logger.Log.Errorw("failed to add child", "parent_id", child.ParentID, "error", err)
		return nil, err
	}

	s.notifier.EnqueueNewChildAlert(ctx, created.ParentID, created.Name)
	return created, nil
}

// UpdateChild applies patch to one of the caller's children.
func (s *ChildService) UpdateChild(ctx context.Context, callerID, parentID, childID int64, patch models.ChildPatch) (*models.Child, error) {
	if callerID != parentID {
		logger.Log.Warnw("update child forbidden", "caller_id", callerID, "parent_id", parentID)
		return nil, ErrForbidden
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, ErrChildNameRequired
		}
		patch.Name = &name
	}
	if patch.DateOfBirth != nil {
		dob := models.StripZone(*patch.DateOfBirth)
		patch.DateOfBirth = &dob
	}

	child, err := s.reader.GetByID(ctx, childID)
	if err != nil {
		logger.Log.Errorw("failed to get child", "child_id", childID, "error", err)
		return nil, err
	}
	if child == nil || child.ParentID != parentID {
		return nil, ErrChildNotFound
	}

	patch.Apply(child)

	updated, err := s.writer.Update(ctx, child)
	if err != nil {
		logger.Log.Errorw("failed to update child", "child_id", childID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrChildNotFound
	}
	return updated, nil
}

// ListChildren returns the caller's children matching filter.
func (s *ChildService) ListChildren(ctx context.Context, callerID int64, filter models.ChildFilter) ([]models.Child, error) {
	if callerID != filter.ParentID {
		logger.Log.Warnw("list children forbidden", "caller_id", callerID, "parent_id", filter.ParentID)
		return nil, ErrForbidden
	}

	children, err := s.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list children", "parent_id", filter.ParentID, "error", err)
		return nil, err
	}
	if children == nil {
		children = []models.Child{}
	}
	return children, nil
}

// ListChildrenByParentID returns the caller with all of its children.
func (s *ChildService) ListChildrenByParentID(ctx context.Context, callerID, parentID int64) (*models.ParentWithChildren, error) {
	if callerID != parentID {
		logger.Log.Warnw("list parent children forbidden", "caller_id", callerID, "parent_id", parentID)
		return nil, ErrForbidden
	}

	parent, err := s.parents.GetWithChildren(ctx, parentID)
	if err != nil {
		logger.Log.Errorw("failed to get parent with children", "parent_id", parentID, "error", err)
		return nil, err
	}
	if parent == nil {
		return nil, ErrParentNotFound
	}
	return parent, nil
}
