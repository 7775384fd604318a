package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rfphub-backend/internal/rfp/domain"
)

type RfpRepositorySuite struct {
	suite.Suite
	db   *gorm.DB
	repo RfpRepository
}

func (s *RfpRepositorySuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(&domain.Rfp{}, &domain.RfpLineItem{}))
	s.db = db
	s.repo = NewRfpRepository(db)
}

func (s *RfpRepositorySuite) TestCreatePersistsLineItems() {
	rfp := &domain.Rfp{
		Title:       "Office laptops",
		Description: "50 business laptops",
		LineItems: []domain.RfpLineItem{
			{Name: "Laptop", Quantity: 50, Specs: "16GB RAM"},
			{Name: "Docking station", Quantity: 50},
		},
	}
	s.Require().NoError(s.repo.Create(rfp))
	s.NotZero(rfp.ID)

	found, err := s.repo.FindByID(rfp.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(domain.StatusDraft, found.Status)
	s.Require().Len(found.LineItems, 2)
	s.Equal("Laptop", found.LineItems[0].Name)
	s.Equal(50, found.LineItems[0].Quantity)
}

func (s *RfpRepositorySuite) TestFindByIDAbsentReturnsNil() {
	found, err := s.repo.FindByID(12345)
	s.NoError(err)
	s.Nil(found)
}

func (s *RfpRepositorySuite) TestListNewestFirst() {
	old := &domain.Rfp{Title: "Old", Description: "old", CreatedAt: time.Now().Add(-time.Hour)}
	s.Require().NoError(s.repo.Create(old))
	recent := &domain.Rfp{Title: "Recent", Description: "recent"}
	s.Require().NoError(s.repo.Create(recent))

	rfps, err := s.repo.List()
	s.Require().NoError(err)
	s.Require().Len(rfps, 2)
	s.Equal("Recent", rfps[0].Title)
	s.Equal("Old", rfps[1].Title)
}

func (s *RfpRepositorySuite) TestUpdateStatus() {
	rfp := &domain.Rfp{Title: "Laptops", Description: "50 laptops"}
	s.Require().NoError(s.repo.Create(rfp))

	s.Require().NoError(s.repo.UpdateStatus(rfp.ID, domain.StatusSent))

	found, err := s.repo.FindByID(rfp.ID)
	s.Require().NoError(err)
	s.Equal(domain.StatusSent, found.Status)
}

func (s *RfpRepositorySuite) TestDeleteRemovesLineItems() {
	rfp := &domain.Rfp{
		Title:       "Laptops",
		Description: "50 laptops",
		LineItems:   []domain.RfpLineItem{{Name: "Laptop", Quantity: 50}},
	}
	s.Require().NoError(s.repo.Create(rfp))

	s.Require().NoError(s.repo.Delete(rfp.ID))

	found, err := s.repo.FindByID(rfp.ID)
	s.Require().NoError(err)
	s.Nil(found)

	var count int64
	s.Require().NoError(s.db.Model(&domain.RfpLineItem{}).Where("rfp_id = ?", rfp.ID).Count(&count).Error)
	s.Zero(count)
}

func TestRfpRepositorySuite(t *testing.T) {
	suite.Run(t, new(RfpRepositorySuite))
}
