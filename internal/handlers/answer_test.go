package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stackit/stackit-api/internal/database"
	"github.com/stackit/stackit-api/internal/models"
	"github.com/stackit/stackit-api/internal/repository"
	"github.com/stackit/stackit-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// AnswerHandlerTestSuite defines the test suite for AnswerHandler
type AnswerHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *AnswerHandler
}

// SetupTest runs before each test
func (suite *AnswerHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Answer{},
		&models.Tag{},
		&models.QuestionTag{},
		&models.Vote{},
		&models.Notification{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	answerRepo := repository.NewAnswerRepository(suite.db)
	questionRepo := repository.NewQuestionRepository(suite.db)
	voteRepo := repository.NewVoteRepository(suite.db)
	notificationRepo := repository.NewNotificationRepository(suite.db)
	answerService := services.NewAnswerService(answerRepo, questionRepo, voteRepo, notificationRepo)
	suite.handler = NewAnswerHandler(answerService)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *AnswerHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *AnswerHandlerTestSuite) createTestUser(username string) *models.User {
	user := &models.User{
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: "hashedpassword",
		Role:         models.RoleUser,
	}
	suite.db.Create(user)
	return user
}

func (suite *AnswerHandlerTestSuite) createTestQuestion(title string, authorID uint64) *models.Question {
	question := &models.Question{
		Title:       title,
		Description: "Test Description",
		AuthorID:    authorID,
	}
	suite.db.Create(question)
	return question
}

func (suite *AnswerHandlerTestSuite) createTestAnswer(content string, authorID, questionID uint64) *models.Answer {
	answer := &models.Answer{
		Content:    content,
		AuthorID:   authorID,
		QuestionID: questionID,
	}
	suite.db.Create(answer)
	return answer
}

func (suite *AnswerHandlerTestSuite) createAuthContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("user_id", userID)

	return c, w
}

func (suite *AnswerHandlerTestSuite) TestCreateAnswer_Success() {
	author := suite.createTestUser("asker")
	answerer := suite.createTestUser("answerer")
	question := suite.createTestQuestion("How do I test?", author.ID)

	body, _ := json.Marshal(map[string]any{
		"content":    "Like this.",
		"questionId": question.ID,
	})
	c, w := suite.createAuthContext("POST", "/api/answers", body, answerer.ID)

	suite.handler.CreateAnswer(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Like this.", response["content"])
	assert.Equal(suite.T(), false, response["is_accepted"])

	authorObj := response["author"].(map[string]any)
	assert.Equal(suite.T(), "answerer", authorObj["username"])
}

func (suite *AnswerHandlerTestSuite) TestCreateAnswer_NotifiesQuestionAuthor() {
	author := suite.createTestUser("asker")
	answerer := suite.createTestUser("answerer")
	question := suite.createTestQuestion("Notify me", author.ID)

	body, _ := json.Marshal(map[string]any{
		"content":    "An answer.",
		"questionId": question.ID,
	})
	c, w := suite.createAuthContext("POST", "/api/answers", body, answerer.ID)

	suite.handler.CreateAnswer(c)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var notifications []models.Notification
	suite.db.Find(&notifications)
	suite.Require().Len(notifications, 1)
	assert.Equal(suite.T(), author.ID, notifications[0].UserID)
	assert.Equal(suite.T(), models.NotificationAnswerReceived, notifications[0].Type)
	assert.False(suite.T(), notifications[0].IsRead)
}

func (suite *AnswerHandlerTestSuite) TestCreateAnswer_OwnQuestionNoNotification() {
	author := suite.createTestUser("asker")
	question := suite.createTestQuestion("Self answered", author.ID)

	body, _ := json.Marshal(map[string]any{
		"content":    "Answering myself.",
		"questionId": question.ID,
	})
	c, w := suite.createAuthContext("POST", "/api/answers", body, author.ID)

	suite.handler.CreateAnswer(c)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var count int64
	suite.db.Model(&models.Notification{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *AnswerHandlerTestSuite) TestCreateAnswer_QuestionNotFound() {
	answerer := suite.createTestUser("answerer")

	body, _ := json.Marshal(map[string]any{
		"content":    "An answer.",
		"questionId": 9999,
	})
	c, w := suite.createAuthContext("POST", "/api/answers", body, answerer.ID)

	suite.handler.CreateAnswer(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var count int64
	suite.db.Model(&models.Answer{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *AnswerHandlerTestSuite) TestCreateAnswer_MissingContent() {
	answerer := suite.createTestUser("answerer")

	body, _ := json.Marshal(map[string]any{
		"questionId": 1,
	})
	c, w := suite.createAuthContext("POST", "/api/answers", body, answerer.ID)

	suite.handler.CreateAnswer(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AnswerHandlerTestSuite) TestCreateAnswer_Unauthorized() {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/answers", nil)
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	suite.handler.CreateAnswer(c)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *AnswerHandlerTestSuite) TestAcceptAnswer_Success() {
	author := suite.createTestUser("asker")
	answerer := suite.createTestUser("answerer")
	question := suite.createTestQuestion("Accept me", author.ID)
	answer := suite.createTestAnswer("The answer", answerer.ID, question.ID)

	body, _ := json.Marshal(map[string]any{"answerId": answer.ID})
	c, w := suite.createAuthContext("POST", "/api/answers/accept", body, author.ID)

	suite.handler.AcceptAnswer(c)

	suite.Require().Equal(http.StatusOK, w.Code)

	var updated models.Answer
	suite.db.First(&updated, answer.ID)
	assert.True(suite.T(), updated.IsAccepted)

	// Answer author gets notified
	var notifications []models.Notification
	suite.db.Find(&notifications)
	suite.Require().Len(notifications, 1)
	assert.Equal(suite.T(), answerer.ID, notifications[0].UserID)
	assert.Equal(suite.T(), models.NotificationAnswerAccepted, notifications[0].Type)
}

func (suite *AnswerHandlerTestSuite) TestAcceptAnswer_ReplacesPreviousAccepted() {
	author := suite.createTestUser("asker")
	answerer := suite.createTestUser("answerer")
	question := suite.createTestQuestion("Only one accepted", author.ID)
	first := suite.createTestAnswer("First", answerer.ID, question.ID)
	second := suite.createTestAnswer("Second", answerer.ID, question.ID)

	for _, answerID := range []uint64{first.ID, second.ID} {
		body, _ := json.Marshal(map[string]any{"answerId": answerID})
		c, w := suite.createAuthContext("POST", "/api/answers/accept", body, author.ID)
		suite.handler.AcceptAnswer(c)
		suite.Require().Equal(http.StatusOK, w.Code)

		var acceptedCount int64
		suite.db.Model(&models.Answer{}).
			Where("question_id = ? AND is_accepted = ?", question.ID, true).
			Count(&acceptedCount)
		assert.Equal(suite.T(), int64(1), acceptedCount)
	}

	var firstReloaded, secondReloaded models.Answer
	suite.db.First(&firstReloaded, first.ID)
	suite.db.First(&secondReloaded, second.ID)
	assert.False(suite.T(), firstReloaded.IsAccepted)
	assert.True(suite.T(), secondReloaded.IsAccepted)
}

func (suite *AnswerHandlerTestSuite) TestAcceptAnswer_NotQuestionAuthor() {
	author := suite.createTestUser("asker")
	answerer := suite.createTestUser("answerer")
	intruder := suite.createTestUser("intruder")
	question := suite.createTestQuestion("Not yours", author.ID)
	answer := suite.createTestAnswer("The answer", answerer.ID, question.ID)

	body, _ := json.Marshal(map[string]any{"answerId": answer.ID})
	c, w := suite.createAuthContext("POST", "/api/answers/accept", body, intruder.ID)

	suite.handler.AcceptAnswer(c)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	var updated models.Answer
	suite.db.First(&updated, answer.ID)
	assert.False(suite.T(), updated.IsAccepted)
}

func (suite *AnswerHandlerTestSuite) TestAcceptAnswer_NotFound() {
	author := suite.createTestUser("asker")

	body, _ := json.Marshal(map[string]any{"answerId": 9999})
	c, w := suite.createAuthContext("POST", "/api/answers/accept", body, author.ID)

	suite.handler.AcceptAnswer(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *AnswerHandlerTestSuite) TestAcceptAnswer_OwnAnswerNoNotification() {
	author := suite.createTestUser("asker")
	question := suite.createTestQuestion("Self accept", author.ID)
	answer := suite.createTestAnswer("My own answer", author.ID, question.ID)

	body, _ := json.Marshal(map[string]any{"answerId": answer.ID})
	c, w := suite.createAuthContext("POST", "/api/answers/accept", body, author.ID)

	suite.handler.AcceptAnswer(c)
	suite.Require().Equal(http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.Notification{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *AnswerHandlerTestSuite) voteOn(answerID uint64, userID uint64, voteType string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]any{"type": voteType})
	url := fmt.Sprintf("/api/answers/%d/vote", answerID)
	c, w := suite.createAuthContext("POST", url, body, userID)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", answerID)}}

	suite.handler.VoteAnswer(c)
	return w
}

func (suite *AnswerHandlerTestSuite) TestVoteAnswer_OneVotePerUser() {
	author := suite.createTestUser("asker")
	voter := suite.createTestUser("voter")
	question := suite.createTestQuestion("Vote on me", author.ID)
	answer := suite.createTestAnswer("The answer", author.ID, question.ID)

	w := suite.voteOn(answer.ID, voter.ID, "UPVOTE")
	suite.Require().Equal(http.StatusOK, w.Code)

	// Re-voting replaces the previous vote instead of adding a second row
	w = suite.voteOn(answer.ID, voter.ID, "DOWNVOTE")
	suite.Require().Equal(http.StatusOK, w.Code)

	var votes []models.Vote
	suite.db.Find(&votes)
	suite.Require().Len(votes, 1)
	assert.Equal(suite.T(), models.VoteDown, votes[0].Type)

	var response map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), float64(-1), response["score"])
}

func (suite *AnswerHandlerTestSuite) TestVoteAnswer_InvalidType() {
	author := suite.createTestUser("asker")
	question := suite.createTestQuestion("Vote on me", author.ID)
	answer := suite.createTestAnswer("The answer", author.ID, question.ID)

	w := suite.voteOn(answer.ID, author.ID, "SIDEWAYS")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AnswerHandlerTestSuite) TestVoteAnswer_AnswerNotFound() {
	voter := suite.createTestUser("voter")

	w := suite.voteOn(9999, voter.ID, "UPVOTE")

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestAnswerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AnswerHandlerTestSuite))
}
