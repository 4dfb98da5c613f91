package models

// UploadPictureRequest carries a base64 encoded image, optionally as a data URL
// swagger:model UploadPictureRequest
type UploadPictureRequest struct {
	// required: true
	// example: data:image/png;base64,iVBORw0KGgo=
	ImageData string `json:"image_data"`
	// example: avatar.png
	FileName string `json:"file_name"`
	// required: true
	// example: image/png
	ContentType string `json:"content_type"`
}

// PictureResponse is the payload of a successful upload
// swagger:model PictureResponse
type PictureResponse struct {
	// example: /api/uploads/profile_pictures/0b5c7f2e-6d0a-4a57-9b59-8e0c1f1f2a11_profile.png
	ProfilePictureURL string `json:"profile_picture_url"`
	Message           string `json:"message"`
}

// SkipPictureResponse is the payload of the skip endpoint
// swagger:model SkipPictureResponse
type SkipPictureResponse struct {
	Message  string `json:"message"`
	NextStep string `json:"next_step"`
}
