// internal/service/question_service_test.go
package service

import (
	"context"
	"testing"

	"exam_prep_keep/internal/config"
	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---
func setupTestDBQuestion() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func questionTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.RandomQuizMax = 100
	return cfg
}

func Test_questionService_GetRandomQuestions(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBQuestion()

	topicID := uuid.New()

	tests := []struct {
		name      string
		req       *model.RandomQuestionsRequest
		setupMock func(repo *mocks.QuestionRepository)
		wantErr   bool
		wantField string
		wantCount int
	}{
		{
			name: "正常系: 指定件数分取得",
			req:  &model.RandomQuestionsRequest{TopicIDs: []uuid.UUID{topicID}, Difficulty: model.DifficultyBasic, Limit: 10},
			setupMock: func(repo *mocks.QuestionRepository) {
				questions := []*model.Question{
					{QuestionID: uuid.New(), TopicID: topicID, Difficulty: model.DifficultyBasic},
					{QuestionID: uuid.New(), TopicID: topicID, Difficulty: model.DifficultyBasic},
				}
				repo.On("FindRandom", mock.Anything, mock.AnythingOfType("*gorm.DB"), []uuid.UUID{topicID}, model.DifficultyBasic, 10).
					Return(questions, nil).Once()
			},
			wantCount: 2,
		},
		{
			name:      "異常系: トピック未指定",
			req:       &model.RandomQuestionsRequest{TopicIDs: nil, Difficulty: model.DifficultyBasic, Limit: 10},
			setupMock: func(repo *mocks.QuestionRepository) {},
			wantErr:   true,
			wantField: "topic_ids",
		},
		{
			name:      "異常系: 難易度が不正",
			req:       &model.RandomQuestionsRequest{TopicIDs: []uuid.UUID{topicID}, Difficulty: model.Difficulty("hard"), Limit: 10},
			setupMock: func(repo *mocks.QuestionRepository) {},
			wantErr:   true,
			wantField: "difficulty",
		},
		{
			name:      "異常系: 取得件数が上限超過",
			req:       &model.RandomQuestionsRequest{TopicIDs: []uuid.UUID{topicID}, Difficulty: model.DifficultyBasic, Limit: 101},
			setupMock: func(repo *mocks.QuestionRepository) {},
			wantErr:   true,
			wantField: "limit",
		},
		{
			name:      "異常系: 取得件数が0",
			req:       &model.RandomQuestionsRequest{TopicIDs: []uuid.UUID{topicID}, Difficulty: model.DifficultyBasic, Limit: 0},
			setupMock: func(repo *mocks.QuestionRepository) {},
			wantErr:   true,
			wantField: "limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQuestionRepo := new(mocks.QuestionRepository)
			svc := NewQuestionService(db, mockQuestionRepo, new(mocks.TopicRepository), questionTestConfig())
			tt.setupMock(mockQuestionRepo)

			questions, err := svc.GetRandomQuestions(ctx, tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantField, appErr.Detail.Field)
				mockQuestionRepo.AssertNotCalled(t, "FindRandom")
			} else {
				require.NoError(t, err)
				assert.Len(t, questions, tt.wantCount)
			}
			mockQuestionRepo.AssertExpectations(t)
		})
	}
}

func Test_questionService_CreateQuestion(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBQuestion()

	topicID := uuid.New()
	validReq := func() *model.CreateQuestionRequest {
		return &model.CreateQuestionRequest{
			TopicID:            topicID,
			Question:           "大政奉還が行われた年は?",
			Options:            []string{"1867年", "1868年", "1871年", "1889年"},
			CorrectOptionIndex: 0,
			Explanation:        "1867年に徳川慶喜が政権を朝廷に返上した。",
			Difficulty:         model.DifficultyBasic,
		}
	}

	t.Run("正常系: 問題作成成功", func(t *testing.T) {
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockTopicRepo := new(mocks.TopicRepository)
		svc := NewQuestionService(db, mockQuestionRepo, mockTopicRepo, questionTestConfig())

		mockTopicRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), topicID).
			Return(&model.Topic{TopicID: topicID, Title: "明治維新"}, nil).Once()
		mockQuestionRepo.On("Create", mock.Anything, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Question")).
			Run(func(args mock.Arguments) {
				q := args.Get(2).(*model.Question)
				assert.Equal(t, topicID, q.TopicID)
				assert.Len(t, q.Options, 4)
				assert.Equal(t, 0, q.CorrectOptionIndex)
			}).Return(nil).Once()

		question, err := svc.CreateQuestion(ctx, validReq())

		require.NoError(t, err)
		require.NotNil(t, question)
		mockQuestionRepo.AssertExpectations(t)
		mockTopicRepo.AssertExpectations(t)
	})

	t.Run("異常系: トピックが存在しない", func(t *testing.T) {
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockTopicRepo := new(mocks.TopicRepository)
		svc := NewQuestionService(db, mockQuestionRepo, mockTopicRepo, questionTestConfig())

		mockTopicRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), topicID).
			Return(nil, model.ErrNotFound).Once()

		question, err := svc.CreateQuestion(ctx, validReq())

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "TOPIC_NOT_FOUND", appErr.Detail.Code)
		assert.Nil(t, question)
		mockQuestionRepo.AssertNotCalled(t, "Create")
	})

	t.Run("異常系: 正解インデックスが選択肢の範囲外", func(t *testing.T) {
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockTopicRepo := new(mocks.TopicRepository)
		svc := NewQuestionService(db, mockQuestionRepo, mockTopicRepo, questionTestConfig())

		req := validReq()
		req.CorrectOptionIndex = 4

		question, err := svc.CreateQuestion(ctx, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "correct_option_index", appErr.Detail.Field)
		assert.Nil(t, question)
		mockTopicRepo.AssertNotCalled(t, "FindByID")
	})
}

func Test_questionService_ListQuestionsByTopic(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBQuestion()

	topicID := uuid.New()

	t.Run("正常系: トピックの問題一覧取得", func(t *testing.T) {
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockTopicRepo := new(mocks.TopicRepository)
		svc := NewQuestionService(db, mockQuestionRepo, mockTopicRepo, questionTestConfig())

		mockTopicRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), topicID).
			Return(&model.Topic{TopicID: topicID}, nil).Once()
		expected := []*model.Question{{QuestionID: uuid.New(), TopicID: topicID}}
		mockQuestionRepo.On("FindByTopic", mock.Anything, mock.AnythingOfType("*gorm.DB"), topicID, model.Difficulty("")).
			Return(expected, nil).Once()

		questions, err := svc.ListQuestionsByTopic(ctx, topicID, "")

		require.NoError(t, err)
		assert.Equal(t, expected, questions)
	})

	t.Run("正常系: 難易度フィルタ付きで取得", func(t *testing.T) {
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockTopicRepo := new(mocks.TopicRepository)
		svc := NewQuestionService(db, mockQuestionRepo, mockTopicRepo, questionTestConfig())

		mockTopicRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), topicID).
			Return(&model.Topic{TopicID: topicID}, nil).Once()
		mockQuestionRepo.On("FindByTopic", mock.Anything, mock.AnythingOfType("*gorm.DB"), topicID, model.DifficultyAdvanced).
			Return([]*model.Question{}, nil).Once()

		questions, err := svc.ListQuestionsByTopic(ctx, topicID, model.DifficultyAdvanced)

		require.NoError(t, err)
		assert.Empty(t, questions)
		mockQuestionRepo.AssertExpectations(t)
	})

	t.Run("異常系: 難易度の指定が不正", func(t *testing.T) {
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockTopicRepo := new(mocks.TopicRepository)
		svc := NewQuestionService(db, mockQuestionRepo, mockTopicRepo, questionTestConfig())

		questions, err := svc.ListQuestionsByTopic(ctx, topicID, model.Difficulty("hard"))

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Nil(t, questions)
		mockTopicRepo.AssertNotCalled(t, "FindByID")
	})

	t.Run("異常系: トピックが存在しない", func(t *testing.T) {
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockTopicRepo := new(mocks.TopicRepository)
		svc := NewQuestionService(db, mockQuestionRepo, mockTopicRepo, questionTestConfig())

		mockTopicRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), topicID).
			Return(nil, model.ErrNotFound).Once()

		questions, err := svc.ListQuestionsByTopic(ctx, topicID, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, questions)
		mockQuestionRepo.AssertNotCalled(t, "FindByTopic")
	})
}
