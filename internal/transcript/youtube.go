package transcript

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
)

type trackList struct {
	XMLName xml.Name   `xml:"transcript_list"`
	Tracks  []xmlTrack `xml:"track"`
}

type xmlTrack struct {
	LangCode string `xml:"lang_code,attr"`
	Name     string `xml:"name,attr"`
}

type timedText struct {
	XMLName xml.Name  `xml:"transcript"`
	Texts   []xmlText `xml:"text"`
}

type xmlText struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Body  string  `xml:",chardata"`
}

func (s *implService) Title(ctx context.Context, videoID string) string {
	watchURL := "https://www.youtube.com/watch?v=" + videoID
	u := fmt.Sprintf("%s?url=%s&format=json", s.oembedBase, url.QueryEscape(watchURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "video"
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Debug(ctx, "oembed lookup failed for %s: %v", videoID, err)
		return "video"
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "video"
	}

	var payload struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Title == "" {
		return "video"
	}
	return payload.Title
}

func (s *implService) List(ctx context.Context, videoID string) ([]Track, error) {
	u := fmt.Sprintf("%s?type=list&v=%s", s.timedTextBase, url.QueryEscape(videoID))

	body, err := s.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var list trackList
	if err := xml.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("parse track list: %w", err)
	}

	if len(list.Tracks) == 0 {
		return nil, ErrDisabled
	}

	tracks := make([]Track, 0, len(list.Tracks))
	for _, t := range list.Tracks {
		tracks = append(tracks, Track{LangCode: t.LangCode, Name: t.Name})
	}
	return tracks, nil
}

func (s *implService) Fetch(ctx context.Context, videoID, langCode string) ([]Segment, error) {
	u := fmt.Sprintf("%s?lang=%s&v=%s", s.timedTextBase, url.QueryEscape(langCode), url.QueryEscape(videoID))

	body, err := s.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse transcript: %w", err)
	}

	if len(tt.Texts) == 0 {
		return nil, ErrNoTranscript
	}

	segments := make([]Segment, 0, len(tt.Texts))
	for _, t := range tt.Texts {
		segments = append(segments, Segment{
			Text:  html.UnescapeString(t.Body),
			Start: t.Start,
			Dur:   t.Dur,
		})
	}
	return segments, nil
}

func (s *implService) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timedtext request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timedtext status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
