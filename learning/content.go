package learning

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/imagaram/sfr-sdk-go/apiclient"
)

// ContentService manages the content items of a space.
type ContentService struct {
	api *apiclient.Client
}

// ListContentOptions filters List.
type ListContentOptions struct {
	ContentType ContentType
	Published   *bool
	Page        *int
	Size        *int
}

// SearchContentOptions filters Search.
type SearchContentOptions struct {
	ContentType ContentType
	Difficulty  ContentDifficulty
	Tags        []string
	Page        *int
	Size        *int
}

func contentPath(spaceID, contentID int64) string {
	return fmt.Sprintf("/spaces/%d/content/%d", spaceID, contentID)
}

// List returns a page of a space's content.
func (s *ContentService) List(ctx context.Context, spaceID int64, opts *ListContentOptions, reqOpts ...apiclient.RequestOption) (*Page[Content], error) {
	q := apiclient.NewQuery()
	if opts != nil {
		q.Str("contentType", string(opts.ContentType)).
			Bool("published", opts.Published).
			Int("page", opts.Page).
			Int("size", opts.Size)
	}

	var page Page[Content]
	if err := s.api.Get(ctx, spacePath(spaceID)+"/content", &page, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to list content of space %d: %w", spaceID, err)
	}
	return &page, nil
}

// Get returns one content item.
func (s *ContentService) Get(ctx context.Context, spaceID, contentID int64, reqOpts ...apiclient.RequestOption) (*Content, error) {
	var content Content
	if err := s.api.Get(ctx, contentPath(spaceID, contentID), &content, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to get content %d: %w", contentID, err)
	}
	return &content, nil
}

// Create adds a content item. A request carrying a File is uploaded as multipart.
func (s *ContentService) Create(ctx context.Context, spaceID int64, req *ContentCreateRequest, reqOpts ...apiclient.RequestOption) (*Content, error) {
	path := spacePath(spaceID) + "/content"

	var content Content
	var err error
	if req.File != nil {
		form, ferr := contentForm(req, true)
		if ferr != nil {
			return nil, ferr
		}
		err = s.api.PostMultipart(ctx, path, form, &content, reqOpts...)
	} else {
		err = s.api.Post(ctx, path, req, &content, reqOpts...)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create content in space %d: %w", spaceID, err)
	}
	return &content, nil
}

// Update applies a partial update. With a File the update is a multipart POST,
// otherwise a JSON PUT.
func (s *ContentService) Update(ctx context.Context, spaceID, contentID int64, req *ContentCreateRequest, reqOpts ...apiclient.RequestOption) (*Content, error) {
	path := contentPath(spaceID, contentID)

	var content Content
	var err error
	if req.File != nil {
		form, ferr := contentForm(req, false)
		if ferr != nil {
			return nil, ferr
		}
		err = s.api.PostMultipart(ctx, path, form, &content, reqOpts...)
	} else {
		err = s.api.Put(ctx, path, req, &content, reqOpts...)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update content %d: %w", contentID, err)
	}
	return &content, nil
}

// contentForm lays out the multipart fields. On create, title, contentType and
// difficulty are always sent; on update only the fields that are set.
func contentForm(req *ContentCreateRequest, create bool) (*apiclient.Form, error) {
	form := apiclient.NewForm()
	if create || req.Title != "" {
		form.Field("title", req.Title)
	}
	if req.Description != "" {
		form.Field("description", req.Description)
	}
	if create {
		form.Field("contentType", string(req.ContentType))
	}
	if req.Content != "" {
		form.Field("content", req.Content)
	}

	name := req.FileName
	if name == "" {
		name = "file"
	}
	form.File("file", name, req.File)

	if req.Duration != nil {
		form.Field("duration", strconv.Itoa(*req.Duration))
	}
	if create || req.Difficulty != "" {
		form.Field("difficulty", string(req.Difficulty))
	}
	if req.Tags != nil {
		tags, err := json.Marshal(req.Tags)
		if err != nil {
			return nil, fmt.Errorf("failed to encode tags: %w", err)
		}
		form.Field("tags", string(tags))
	}
	if req.IsPublished != nil {
		form.Field("isPublished", strconv.FormatBool(*req.IsPublished))
	}
	if req.Order != nil {
		form.Field("order", strconv.Itoa(*req.Order))
	}
	return form, nil
}

// Delete removes a content item.
func (s *ContentService) Delete(ctx context.Context, spaceID, contentID int64, reqOpts ...apiclient.RequestOption) error {
	if err := s.api.Delete(ctx, contentPath(spaceID, contentID), nil, reqOpts...); err != nil {
		return fmt.Errorf("failed to delete content %d: %w", contentID, err)
	}
	return nil
}

// Progress returns the caller's progress in a space.
func (s *ContentService) Progress(ctx context.Context, spaceID int64, reqOpts ...apiclient.RequestOption) (*Progress, error) {
	var progress Progress
	if err := s.api.Get(ctx, spacePath(spaceID)+"/progress", &progress, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to get progress in space %d: %w", spaceID, err)
	}
	return &progress, nil
}

// RecordProgress records a progress event. The response shape is server defined.
func (s *ContentService) RecordProgress(ctx context.Context, spaceID, contentID int64, req *ProgressRecordRequest, reqOpts ...apiclient.RequestOption) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Post(ctx, contentPath(spaceID, contentID)+"/progress", req, &out, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to record progress on content %d: %w", contentID, err)
	}
	return out, nil
}

// Search finds content in a space.
func (s *ContentService) Search(ctx context.Context, spaceID int64, query string, opts *SearchContentOptions, reqOpts ...apiclient.RequestOption) (*Page[Content], error) {
	q := apiclient.NewQuery().Str("q", query)
	if opts != nil {
		q.Str("contentType", string(opts.ContentType)).
			Str("difficulty", string(opts.Difficulty)).
			Join("tags", opts.Tags).
			Int("page", opts.Page).
			Int("size", opts.Size)
	}

	var page Page[Content]
	if err := s.api.Get(ctx, spacePath(spaceID)+"/content/search", &page, withQuery(q, reqOpts)...); err != nil {
		return nil, fmt.Errorf("failed to search content in space %d: %w", spaceID, err)
	}
	return &page, nil
}

// Next returns the next content item to study, or nil when there is none.
func (s *ContentService) Next(ctx context.Context, spaceID int64, reqOpts ...apiclient.RequestOption) (*Content, error) {
	var content Content
	err := s.api.Get(ctx, spacePath(spaceID)+"/content/next", &content, reqOpts...)
	if apiclient.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get next content in space %d: %w", spaceID, err)
	}
	return &content, nil
}

// Prerequisites reports whether the caller may open a content item.
func (s *ContentService) Prerequisites(ctx context.Context, spaceID, contentID int64, reqOpts ...apiclient.RequestOption) (*PrerequisiteCheck, error) {
	var check PrerequisiteCheck
	if err := s.api.Get(ctx, contentPath(spaceID, contentID)+"/prerequisites", &check, reqOpts...); err != nil {
		return nil, fmt.Errorf("failed to check prerequisites of content %d: %w", contentID, err)
	}
	return &check, nil
}

// DownloadURL returns a download link for a content item's file.
func (s *ContentService) DownloadURL(ctx context.Context, spaceID, contentID int64, reqOpts ...apiclient.RequestOption) (string, error) {
	var out struct {
		DownloadURL string `json:"downloadUrl"`
	}
	if err := s.api.Get(ctx, contentPath(spaceID, contentID)+"/download", &out, reqOpts...); err != nil {
		return "", fmt.Errorf("failed to get download URL of content %d: %w", contentID, err)
	}
	return out.DownloadURL, nil
}
