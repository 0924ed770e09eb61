package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

// FoodRecognitionService proxies images to the recognition inference
// service. The prediction payload is opaque to this backend: it is passed
// through to clients and into capture snapshots unchanged.
type FoodRecognitionService struct {
	baseURL string
	client  *http.Client
}

func NewFoodRecognitionService(baseURL string) *FoodRecognitionService {
	return &FoodRecognitionService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type FoodRecognitionResponse struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	FoodCount     int     `json:"food_count"`
	Food1Name     *string `json:"food1_name"`
	Food1Calories *int    `json:"food1_calories"`
	Food2Name     *string `json:"food2_name"`
	Food2Calories *int    `json:"food2_calories"`
	Food3Name     *string `json:"food3_name"`
	Food3Calories *int    `json:"food3_calories"`
	TotalCalories int     `json:"total_calories"`
}

type FoodSearchResponse struct {
	FoodName string `json:"foodName"`
	Calories int    `json:"calories"`
}

func (s *FoodRecognitionService) RecognizeFood(image []byte, filename string) (*FoodRecognitionResponse, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("build multipart request: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("build multipart request: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("build multipart request: %w", err)
	}

	resp, err := s.client.Post(s.baseURL+"/api/v1/food/recognize", w.FormDataContentType(), &body)
	if err != nil {
		return nil, fmt.Errorf("call recognizer: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read recognizer response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recognizer error %d: %s", resp.StatusCode, string(raw))
	}

	var out FoodRecognitionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse recognizer response: %w", err)
	}
	return &out, nil
}

func (s *FoodRecognitionService) SearchFood(foodName string) (*FoodSearchResponse, error) {
	u := fmt.Sprintf("%s/api/v1/food/search?foodName=%s", s.baseURL, url.QueryEscape(foodName))

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("call food search: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read food search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("food search error %d: %s", resp.StatusCode, string(raw))
	}

	var out FoodSearchResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse food search response: %w", err)
	}
	if out.FoodName == "" {
		return nil, fmt.Errorf("food not found: %s", foodName)
	}
	return &out, nil
}
