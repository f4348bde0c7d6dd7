// ABOUTME: Mappers converting photo domain models to response DTOs
// ABOUTME: Keeps wire shapes decoupled from core types

package mappers

import (
	"memoria-app-api/api/dto/responses"
	"memoria-app-api/core/domain"
)

// ToPhotoResponse converts a domain photo to its wire representation
func ToPhotoResponse(photo domain.UserPhoto) responses.Photo {
	return responses.Photo{
		Filepath:    photo.Filepath,
		Filename:    photo.Filename(),
		WebviewPath: photo.WebviewPath,
		DateTaken:   photo.DateTaken,
		Size:        photo.Size,
	}
}

// ToPhotoListResponse converts a photo list to its wire envelope
func ToPhotoListResponse(photos []domain.UserPhoto) responses.PhotoListResponse {
	out := make([]responses.Photo, 0, len(photos))
	for _, p := range photos {
		out = append(out, ToPhotoResponse(p))
	}
	return responses.PhotoListResponse{
		Photos: out,
		Count:  len(out),
	}
}
