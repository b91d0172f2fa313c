// randomchat/controllers/chat.go
package controllers

import (
	"context"
	"fmt"
	"strings"

	apperrors "randomchat/randomchat/errors"
	"randomchat/randomchat/services/genai"
	"randomchat/randomchat/sources/psql/models"
	"randomchat/randomchat/utils/logging"
	"randomchat/randomchat/utils/types"

	"go.uber.org/zap"
)

// OwnerInfoStore is the read side of the singleton owner record.
type OwnerInfoStore interface {
	Get(ctx context.Context) (*models.OwnerInfo, error)
}

// Completer abstracts the generative API so chat logic is testable
// without network access. *genai.Client satisfies it.
type Completer interface {
	Generate(ctx context.Context, contents []genai.Content) (string, error)
}

type ChatController struct {
	ownerInfo OwnerInfoStore
	completer Completer
}

func NewChatController(ownerInfo OwnerInfoStore, completer Completer) *ChatController {
	return &ChatController{ownerInfo: ownerInfo, completer: completer}
}

// keywordRule maps trigger substrings to a templated reply built from the
// owner record. First match wins; kept as a flat table on purpose.
type keywordRule struct {
	triggers []string
	reply    func(info *models.OwnerInfo) string
}

// The "creaters" spellings survive from the original front-end prompts.
var keywordRules = []keywordRule{
	{
		triggers: []string{"creators name", "creaters name"},
		reply: func(info *models.OwnerInfo) string {
			return fmt.Sprintf("My owner's name is %s.", info.Name)
		},
	},
	{
		triggers: []string{"creators dob", "creators date of birth", "creaters dob", "creaters date of birth"},
		reply: func(info *models.OwnerInfo) string {
			return fmt.Sprintf("My owner's date of birth is %s.", info.DOB)
		},
	},
	{
		triggers: []string{"your name"},
		reply: func(info *models.OwnerInfo) string {
			return fmt.Sprintf("My Name is %s.", info.Name1)
		},
	},
}

func matchKeywordRule(message string) *keywordRule {
	lower := strings.ToLower(message)
	for i := range keywordRules {
		for _, trigger := range keywordRules[i].triggers {
			if strings.Contains(lower, trigger) {
				return &keywordRules[i]
			}
		}
	}
	return nil
}

// Chat answers one message. Known owner questions are answered from the
// owner record without touching the external API; everything else is
// relayed to it with the prior turns as context. No retries.
func (c *ChatController) Chat(ctx context.Context, req types.ChatRequest) (string, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return "", fmt.Errorf("%w: message is required", apperrors.ErrValidation)
	}

	if rule := matchKeywordRule(message); rule != nil {
		info, err := c.ownerInfo.Get(ctx)
		if err != nil {
			logging.ErrorLogger.Error("chat: owner info lookup failed", zap.Error(err))
			return "", fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
		}
		if info != nil {
			return rule.reply(info), nil
		}
		// no record saved yet: fall through to the relay path
	}

	contents := historyToContents(req.ChatHistory)
	contents = append(contents, genai.Content{
		Role:  "user",
		Parts: []genai.Part{{Text: message}},
	})

	reply, err := c.completer.Generate(ctx, contents)
	if err != nil {
		logging.ErrorLogger.Error("chat: generate failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", apperrors.ErrExternalService, err)
	}
	return reply, nil
}

// historyToContents keeps turn order and coerces any role other than
// "user" to "model", which is all the external API accepts.
func historyToContents(history []types.ChatTurn) []genai.Content {
	contents := make([]genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := "model"
		if turn.Role == "user" {
			role = "user"
		}
		contents = append(contents, genai.Content{
			Role:  role,
			Parts: []genai.Part{{Text: turn.Text}},
		})
	}
	return contents
}
