package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Survey matches the Express surveys collection (surveyModel.js):
// site-visit dates plus the external document links for a case.
type Survey struct {
	ID                                uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"_id"`
	CaseID                            uuid.UUID  `gorm:"column:case_id;type:uuid;not null;index" json:"caseId"`
	SurveyFirstDay                    *time.Time `gorm:"column:survey_first_day" json:"surveyFirstDay"`
	SurveySecondDay                   *time.Time `gorm:"column:survey_second_day" json:"surveySecondDay"`
	SurveyForeclosureAnnouncementLink string     `gorm:"column:survey_foreclosure_announcement_link" json:"surveyForeclosureAnnouncementLink"`
	Survey988Link                     string     `gorm:"column:survey_988_link" json:"survey988Link"`
	SurveyObjectPhotoLink             string     `gorm:"column:survey_object_photo_link" json:"surveyObjectPhotoLink"`
	SurveyForeclosureRecordLink       string     `gorm:"column:survey_foreclosure_record_link" json:"surveyForeclosureRecordLink"`
	SurveyObjectViewLink              string     `gorm:"column:survey_object_view_link" json:"surveyObjectViewLink"`
	SurveyPagesViewLink               string     `gorm:"column:survey_pages_view_link" json:"surveyPagesViewLink"`
	SurveyMoneytViewLink              string     `gorm:"column:survey_moneyt_view_link" json:"surveyMoneytViewLink"`
}

func (Survey) TableName() string {
	return "surveys"
}

func (s *Survey) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
