package weather

import (
	"bytes"
	"encoding/json"
)

// kmaResponse - общая оболочка ответа VilageFcstInfoService_2.0
type kmaResponse struct {
	Response struct {
		Header struct {
			ResultCode string `json:"resultCode"`
			ResultMsg  string `json:"resultMsg"`
		} `json:"header"`
		Body struct {
			DataType string `json:"dataType"`
			Items    struct {
				Item []kmaItem `json:"item"`
			} `json:"items"`
			PageNo     int `json:"pageNo"`
			NumOfRows  int `json:"numOfRows"`
			TotalCount int `json:"totalCount"`
		} `json:"body"`
	} `json:"response"`
}

type kmaItem struct {
	BaseDate  string    `json:"baseDate"`
	BaseTime  string    `json:"baseTime"`
	Category  string    `json:"category"`
	ObsrValue flexValue `json:"obsrValue"`
	FcstDate  string    `json:"fcstDate"`
	FcstTime  string    `json:"fcstTime"`
	FcstValue flexValue `json:"fcstValue"`
	Nx        int       `json:"nx"`
	Ny        int       `json:"ny"`
}

const resultCodeOK = "00"

// flexValue принимает значение и как строку, и как число JSON
type flexValue string

func (v *flexValue) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = flexValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = flexValue(n.String())
	return nil
}
