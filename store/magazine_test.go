package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/sheidamoradi/danesh-platform/models"
)

func TestListMagazinesActiveOnly(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateMagazine(&models.Magazine{Title: "Spring", IssueNumber: 1, IsActive: true}))
	inactive := models.Magazine{Title: "Archive", IssueNumber: 2}
	require.NoError(t, s.CreateMagazine(&inactive))
	off := false
	_, err := s.UpdateMagazine(inactive.ID, MagazinePatch{IsActive: &off})
	require.NoError(t, err)

	mags, err := s.ListMagazines()
	require.NoError(t, err)
	require.Len(t, mags, 1)
	assert.Equal(t, "Spring", mags[0].Title)

	// Inactive issues stay retrievable by id; the filter is display-only.
	_, err = s.GetMagazine(inactive.ID)
	assert.NoError(t, err)
}

func TestArticlesOrderedWithinMagazine(t *testing.T) {
	s := newTestStore(t)
	mag := models.Magazine{Title: "Spring", IsActive: true}
	require.NoError(t, s.CreateMagazine(&mag))

	require.NoError(t, s.CreateArticle(&models.Article{Title: "second", MagazineID: mag.ID, Order: 2}))
	require.NoError(t, s.CreateArticle(&models.Article{Title: "first", MagazineID: mag.ID, Order: 1}))

	articles, err := s.ListArticlesByMagazine(mag.ID)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "first", articles[0].Title)
	assert.Equal(t, "second", articles[1].Title)
}

func TestArticleOrderUniquePerMagazine(t *testing.T) {
	s := newTestStore(t)
	mag := models.Magazine{Title: "Spring", IsActive: true}
	require.NoError(t, s.CreateMagazine(&mag))
	require.NoError(t, s.CreateArticle(&models.Article{Title: "a", MagazineID: mag.ID, Order: 1}))

	err := s.CreateArticle(&models.Article{Title: "b", MagazineID: mag.ID, Order: 1})
	assert.True(t, IsValidation(err))
}

func TestArticleRequiresMagazine(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateArticle(&models.Article{Title: "orphan", MagazineID: 99, Order: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMagazineCascades(t *testing.T) {
	s := newTestStore(t)
	mag := models.Magazine{Title: "Spring", IsActive: true}
	require.NoError(t, s.CreateMagazine(&mag))

	article := models.Article{Title: "a", MagazineID: mag.ID, Order: 1}
	require.NoError(t, s.CreateArticle(&article))
	require.NoError(t, s.CreateArticleContent(&models.ArticleContent{
		ArticleID:   article.ID,
		ContentType: models.ContentTypeText,
		Content:     datatypes.JSON(`{"text":"hello"}`),
	}))

	existed, err := s.DeleteMagazine(mag.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	// No orphan articles or content blocks survive.
	var articles int64
	s.db.Model(&models.Article{}).Where("magazine_id = ?", mag.ID).Count(&articles)
	assert.Zero(t, articles)
	var contents int64
	s.db.Model(&models.ArticleContent{}).Where("article_id = ?", article.ID).Count(&contents)
	assert.Zero(t, contents)

	existed, err = s.DeleteMagazine(mag.ID)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestDeleteWorkshopCascades(t *testing.T) {
	s := newTestStore(t)
	workshop := models.Workshop{Title: "Pruning"}
	require.NoError(t, s.CreateWorkshop(&workshop))

	section := models.WorkshopSection{WorkshopID: workshop.ID, Title: "intro", Order: 1}
	require.NoError(t, s.CreateWorkshopSection(&section))
	require.NoError(t, s.CreateWorkshopContent(&models.WorkshopContent{
		WorkshopID: workshop.ID,
		SectionID:  &section.ID,
		Title:      "video",
		Order:      1,
	}))

	existed, err := s.DeleteWorkshop(workshop.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	var sections int64
	s.db.Model(&models.WorkshopSection{}).Where("workshop_id = ?", workshop.ID).Count(&sections)
	assert.Zero(t, sections)
	var contents int64
	s.db.Model(&models.WorkshopContent{}).Where("workshop_id = ?", workshop.ID).Count(&contents)
	assert.Zero(t, contents)
}

func TestActiveSlidesOrdered(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateSlide(&models.Slide{Title: "third", IsActive: true, Order: 3}))
	require.NoError(t, s.CreateSlide(&models.Slide{Title: "first", IsActive: true, Order: 1}))
	hidden := models.Slide{Title: "hidden", Order: 2}
	require.NoError(t, s.CreateSlide(&hidden))
	off := false
	_, err := s.UpdateSlide(hidden.ID, SlidePatch{IsActive: &off})
	require.NoError(t, err)

	slides, err := s.ActiveSlides()
	require.NoError(t, err)
	require.Len(t, slides, 2)
	assert.Equal(t, "first", slides[0].Title)
	assert.Equal(t, "third", slides[1].Title)
}
