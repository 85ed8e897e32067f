package service

import (
	"campus_hub_backend/internal/model"
	"campus_hub_backend/internal/store"
	"campus_hub_backend/internal/util"
)

type NoteService struct {
	store *store.EntityStore
}

func NewNoteService(s *store.EntityStore) *NoteService {
	return &NoteService{store: s}
}

func (s *NoteService) ListNotes(userID string) []model.Note {
	return s.store.GetNotes(userID)
}

func (s *NoteService) CreateNote(userID string, note model.Note) model.Note {
	return s.store.AddNote(userID, note)
}

func (s *NoteService) UpdateNote(userID, noteID string, patch map[string]interface{}) (*model.Note, error) {
	updated := s.store.UpdateNote(userID, noteID, patch)
	if updated == nil {
		return nil, util.ErrNoteNotFound
	}
	return updated, nil
}

func (s *NoteService) DeleteNote(userID, noteID string) error {
	if !s.store.DeleteNote(userID, noteID) {
		return util.ErrNoteNotFound
	}
	return nil
}
