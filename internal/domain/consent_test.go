package domain

import (
	"testing"
)

func TestConsentTemplateLifecycle(t *testing.T) {
	tests := []struct {
		name        string
		status      ConsentStatus
		canEdit     bool
		canPublish  bool
		canArchive  bool
		canDelete   bool
		canFork     bool
	}{
		{
			name:       "draft",
			status:     ConsentStatusDraft,
			canEdit:    true,
			canPublish: true,
			canArchive: false,
			canDelete:  true,
			canFork:    false,
		},
		{
			name:       "published",
			status:     ConsentStatusPublished,
			canEdit:    false,
			canPublish: false,
			canArchive: true,
			canDelete:  false,
			canFork:    true,
		},
		{
			name:       "archived",
			status:     ConsentStatusArchived,
			canEdit:    false,
			canPublish: false,
			canArchive: false,
			canDelete:  false,
			canFork:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			template := &ConsentTemplate{Status: tt.status}

			if got := template.CanEdit(); got != tt.canEdit {
				t.Errorf("CanEdit() = %v, want %v", got, tt.canEdit)
			}
			if got := template.CanPublish(); got != tt.canPublish {
				t.Errorf("CanPublish() = %v, want %v", got, tt.canPublish)
			}
			if got := template.CanArchive(); got != tt.canArchive {
				t.Errorf("CanArchive() = %v, want %v", got, tt.canArchive)
			}
			if got := template.CanDelete(); got != tt.canDelete {
				t.Errorf("CanDelete() = %v, want %v", got, tt.canDelete)
			}
			if got := template.CanFork(); got != tt.canFork {
				t.Errorf("CanFork() = %v, want %v", got, tt.canFork)
			}
		})
	}
}

func TestConsentStatusValid(t *testing.T) {
	valid := []ConsentStatus{ConsentStatusDraft, ConsentStatusPublished, ConsentStatusArchived}
	for _, status := range valid {
		if !status.Valid() {
			t.Errorf("expected %q to be valid", status)
		}
	}
	if ConsentStatus("deleted").Valid() {
		t.Error("expected unknown status to be invalid")
	}
}
