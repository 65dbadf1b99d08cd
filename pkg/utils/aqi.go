package utils

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

var aqiClient *resty.Client

// AQIData is the slice of the provider response the portal surfaces.
type AQIData struct {
	City     string `json:"city"`
	AQI      int    `json:"aqi"`
	Category string `json:"category"`
}

type aqiProviderResponse struct {
	Status string `json:"status"`
	Data   struct {
		AQI  int `json:"aqi"`
		City struct {
			Name string `json:"name"`
		} `json:"city"`
	} `json:"data"`
}

// InitAQI builds the shared air quality client. Called once at startup,
// before the server accepts requests, so handlers only ever read the
// package variable.
func InitAQI() {
	baseURL := os.Getenv("AQI_API_URL")
	if baseURL == "" {
		baseURL = "https://api.waqi.info"
	}
	aqiClient = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetHeader("Accept", "application/json")
}

// FetchAQI queries the external air quality provider for a city.
func FetchAQI(city string) (*AQIData, error) {
	if aqiClient == nil {
		return nil, errors.New("aqi client not initialized")
	}

	var out aqiProviderResponse
	resp, err := aqiClient.R().
		SetResult(&out).
		SetQueryParam("token", os.Getenv("AQI_API_TOKEN")).
		Get(fmt.Sprintf("/feed/%s/", city))
	if err != nil {
		return nil, err
	}
	if resp.IsError() || out.Status != "ok" {
		return nil, fmt.Errorf("aqi provider returned status %q", out.Status)
	}

	return &AQIData{
		City:     out.Data.City.Name,
		AQI:      out.Data.AQI,
		Category: AQICategory(out.Data.AQI),
	}, nil
}

// AQICategory maps an AQI value to the CPCB band label.
func AQICategory(aqi int) string {
	switch {
	case aqi <= 50:
		return "Good"
	case aqi <= 100:
		return "Satisfactory"
	case aqi <= 200:
		return "Moderate"
	case aqi <= 300:
		return "Poor"
	case aqi <= 400:
		return "Very Poor"
	default:
		return "Severe"
	}
}
