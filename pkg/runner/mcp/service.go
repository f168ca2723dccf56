// Package mcp provides the Model Context Protocol server integration for keepcmd.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"tableflip.dev/keepcmd/pkg/app"
	"tableflip.dev/keepcmd/pkg/category"
	"tableflip.dev/keepcmd/pkg/dnd"
	"tableflip.dev/keepcmd/pkg/snapshot"
)

// Service serializes MCP tool calls onto a single board. Every call starts
// by reloading the snapshot so edits made by other processes are visible.
type Service struct {
	mu    sync.Mutex
	board *app.Board
}

// CategorySummary describes a category without its commands.
type CategorySummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	CommandCount int    `json:"commandCount"`
}

// MoveResult is the order after a move and the drag announcements.
type MoveResult struct {
	Order         []string `json:"order"`
	Announcements []string `json:"announcements"`
}

// NewService builds a service over b.
func NewService(b *app.Board) *Service {
	return &Service{board: b}
}

func (s *Service) lock(ctx context.Context) (func(), error) {
	if s.board == nil {
		return nil, errors.New("board is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.board.Reload()
	return s.mu.Unlock, nil
}

// ListCategories returns summaries for the categories matching keyword.
func (s *Service) ListCategories(ctx context.Context, keyword string) ([]CategorySummary, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	s.board.Filter(keyword)
	defer s.board.Filter("")
	cats := s.board.Categories()
	out := make([]CategorySummary, 0, len(cats))
	for _, c := range cats {
		out = append(out, summarize(c))
	}
	return out, nil
}

// Snapshot returns the whole board encoded the way it is persisted.
func (s *Service) Snapshot(ctx context.Context) ([]byte, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return snapshot.Encode(s.board.All())
}

// Category returns the category with id, including its commands.
func (s *Service) Category(ctx context.Context, id string) (*category.Category, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return s.find(id)
}

// AddCategory prepends a new category.
func (s *Service) AddCategory(ctx context.Context, title, description string) (*category.Category, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("title is required")
	}
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	u := s.board.ModifyCategory("", category.Category{Title: title, Description: description})
	if err := u.Err(); err != nil {
		return nil, err
	}
	return s.find(u.Change.ID)
}

// UpdateCategory changes the non-nil fields of category id.
func (s *Service) UpdateCategory(ctx context.Context, id string, title, description *string) (*category.Category, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	cur, err := s.find(id)
	if err != nil {
		return nil, err
	}
	next := *cur
	if title != nil {
		next.Title = *title
	}
	if description != nil {
		next.Description = *description
	}
	if err := s.board.ModifyCategory(id, next).Err(); err != nil {
		return nil, err
	}
	return s.find(id)
}

// RemoveCategory deletes category id with all of its commands.
func (s *Service) RemoveCategory(ctx context.Context, id string) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	return s.board.RemoveCategory(id).Err()
}

// AddCommand appends a command to categoryID.
func (s *Service) AddCommand(ctx context.Context, categoryID, command, description string) (*category.Command, error) {
	if strings.TrimSpace(command) == "" {
		return nil, errors.New("command is required")
	}
	if categoryID == "" {
		return nil, errors.New("category is required")
	}
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	u := s.board.ModifyCommand(categoryID, "", category.Command{Command: command, Description: description})
	if err := u.Err(); err != nil {
		return nil, err
	}
	return s.findCommand(categoryID, u.Change.ID)
}

// UpdateCommand changes the non-nil fields of a command.
func (s *Service) UpdateCommand(ctx context.Context, categoryID, id string, command, description *string) (*category.Command, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	cur, err := s.findCommand(categoryID, id)
	if err != nil {
		return nil, err
	}
	next := *cur
	if command != nil {
		next.Command = *command
	}
	if description != nil {
		next.Description = *description
	}
	if err := s.board.ModifyCommand(categoryID, id, next).Err(); err != nil {
		return nil, err
	}
	return s.findCommand(categoryID, id)
}

// RemoveCommand deletes a command.
func (s *Service) RemoveCommand(ctx context.Context, categoryID, id string) error {
	if categoryID == "" {
		return errors.New("category is required")
	}
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	return s.board.RemoveCommand(categoryID, id).Err()
}

// MoveCategory puts id at over's position.
func (s *Service) MoveCategory(ctx context.Context, id, over string) (*MoveResult, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	_, said, err := s.board.Replay(dnd.Item{List: dnd.CategoryList, ID: id}, dnd.Item{List: dnd.CategoryList, ID: over})
	if err != nil {
		return nil, err
	}
	return &MoveResult{Order: s.board.All().IDs(), Announcements: said}, nil
}

// MoveCommand puts command id at over's position inside categoryID.
func (s *Service) MoveCommand(ctx context.Context, categoryID, id, over string) (*MoveResult, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if _, err := s.find(categoryID); err != nil {
		return nil, err
	}
	s.board.Navigate(categoryID)
	_, said, err := s.board.Replay(dnd.Item{List: dnd.CommandList, ID: id}, dnd.Item{List: dnd.CommandList, ID: over})
	if err != nil {
		return nil, err
	}
	order := make([]string, 0, len(s.board.Commands()))
	for _, c := range s.board.Commands() {
		order = append(order, c.ID)
	}
	return &MoveResult{Order: order, Announcements: said}, nil
}

func (s *Service) find(id string) (*category.Category, error) {
	c := s.board.All().Find(id)
	if c == nil {
		return nil, fmt.Errorf("%w: category %q", category.ErrNotFound, id)
	}
	return c, nil
}

func (s *Service) findCommand(categoryID, id string) (*category.Command, error) {
	c, err := s.find(categoryID)
	if err != nil {
		return nil, err
	}
	cmd := c.FindCommand(id)
	if cmd == nil {
		return nil, fmt.Errorf("%w: command %q", category.ErrNotFound, id)
	}
	return cmd, nil
}

func summarize(c *category.Category) CategorySummary {
	return CategorySummary{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		CommandCount: len(c.Commands),
	}
}
