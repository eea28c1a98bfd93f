package models

import "time"

// PhotoSource tags where a photo's bytes live: an external URL or a file
// stored by the upload layer.
type PhotoSource string

const (
	PhotoSourceURL  PhotoSource = "url"
	PhotoSourceFile PhotoSource = "file"
)

// Photo represents one image attached to a post. Exactly one source kind
// is recorded per photo; SourceRef is the URL or the stored file path
// depending on SourceType.
type Photo struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	PostID     uint        `json:"post_id" gorm:"index;not null"`
	SourceType PhotoSource `json:"source_type" gorm:"size:10;not null"`
	SourceRef  string      `json:"source_ref" gorm:"size:200;not null"`
	Timestamp  time.Time   `json:"timestamp" gorm:"index"`
}

// Location returns the retrievable location of the photo regardless of
// source kind.
func (p *Photo) Location() string {
	return p.SourceRef
}

// IsUpload reports whether the photo came from the file-upload layer
func (p *Photo) IsUpload() bool {
	return p.SourceType == PhotoSourceFile
}

// PhotoInput defines one photo in a create-post request. Exactly one of
// ImageURL and FilePath must be set.
type PhotoInput struct {
	ImageURL string `json:"image_url,omitempty" validate:"omitempty,url"`
	FilePath string `json:"file_path,omitempty"`
}

// ToPhoto resolves the input into a tagged Photo. A validation error is
// returned when neither or both sources are present.
func (in PhotoInput) ToPhoto() (Photo, error) {
	switch {
	case in.ImageURL != "" && in.FilePath != "":
		return Photo{}, NewValidationError("photo must have exactly one of image_url or file_path")
	case in.ImageURL != "":
		return Photo{SourceType: PhotoSourceURL, SourceRef: in.ImageURL}, nil
	case in.FilePath != "":
		return Photo{SourceType: PhotoSourceFile, SourceRef: in.FilePath}, nil
	default:
		return Photo{}, NewValidationError("photo must have one of image_url or file_path")
	}
}
