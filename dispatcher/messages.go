package dispatcher

import (
	"fmt"
	"maps"
	"strconv"

	"github.com/talkdeck/talkdeck-push-server/domain"
)

const (
	dailyTitle  = "Your daily conversation starter 💬"
	dailyBody   = "A fresh question is waiting for you. Open the app and get talking!"
	weeklyTitle = "This week's highlights ✨"
	weeklyBody  = "Catch up on the questions everyone loved this week."

	newCategoryTitle   = "New category available! 🎉"
	newCategoryBodyFmt = "Check out %q and discover a new set of questions."

	quickQuestionTitle = "Quick question ⚡"

	quickChannel = "two_second_questions"
	clickAction  = "FLUTTER_NOTIFICATION_CLICK"
)

func defaultHints() domain.PlatformHints {
	return domain.PlatformHints{
		AndroidPriority:    "high",
		AndroidSound:       "default",
		AndroidClickAction: clickAction,
		IOSSound:           "default",
		IOSBadge:           1,
	}
}

func quickHints() domain.PlatformHints {
	hints := defaultHints()
	hints.AndroidChannelID = quickChannel
	hints.IOSThreadID = quickChannel
	return hints
}

// payload copies extra first so type and timestamp always come from the dispatcher.
func (d *dispatcher) payload(msgType domain.MessageType, extra map[string]string) map[string]string {
	p := make(map[string]string, len(extra)+2)
	maps.Copy(p, extra)
	p[domain.PayloadType] = string(msgType)
	p[domain.PayloadTimestamp] = d.now().UTC().Format(domain.TimestampLayout)
	return p
}

func (d *dispatcher) dailyReminderMessage() domain.PushMessage {
	return domain.PushMessage{
		Title:   dailyTitle,
		Body:    dailyBody,
		Target:  domain.TopicTarget(domain.TopicDailyReminders),
		Payload: d.payload(domain.MessageTypeDailyQuestion, nil),
		Hints:   defaultHints(),
	}
}

func (d *dispatcher) weeklyHighlightMessage() domain.PushMessage {
	return domain.PushMessage{
		Title:   weeklyTitle,
		Body:    weeklyBody,
		Target:  domain.TopicTarget(domain.TopicWeeklyHighlights),
		Payload: d.payload(domain.MessageTypeWeeklyHighlights, nil),
		Hints:   defaultHints(),
	}
}

func (d *dispatcher) newCategoryMessage(category domain.Category) domain.PushMessage {
	return domain.PushMessage{
		Title:  newCategoryTitle,
		Body:   fmt.Sprintf(newCategoryBodyFmt, category.Name),
		Target: domain.TopicTarget(domain.TopicNewCategoryAlerts),
		Payload: d.payload(domain.MessageTypeNewCategory, map[string]string{
			domain.PayloadCategoryId:   category.Id,
			domain.PayloadCategoryName: category.Name,
		}),
		Hints: defaultHints(),
	}
}

func (d *dispatcher) quickQuestionMessage(immediate bool) domain.PushMessage {
	question := d.randomQuestion()
	extra := map[string]string{
		domain.PayloadQuestion:   question,
		domain.PayloadContinuous: strconv.FormatBool(true),
	}
	if immediate {
		extra[domain.PayloadImmediate] = strconv.FormatBool(true)
	}
	return domain.PushMessage{
		Title:   quickQuestionTitle,
		Body:    question,
		Target:  domain.TopicTarget(domain.TopicTwoSecondQuestions),
		Payload: d.payload(domain.MessageTypeTwoSecondQuestion, extra),
		Hints:   quickHints(),
	}
}

func (d *dispatcher) customMessage(req CustomRequest) domain.PushMessage {
	return domain.PushMessage{
		Title:   req.Title,
		Body:    req.Body,
		Target:  domain.TopicTarget(req.Topic),
		Payload: d.payload(domain.MessageTypeCustom, req.Data),
		Hints:   defaultHints(),
	}
}

func (d *dispatcher) deviceMessage(req DeviceRequest) domain.PushMessage {
	return domain.PushMessage{
		Title:   req.Title,
		Body:    req.Body,
		Target:  domain.DeviceTarget(req.Token),
		Payload: d.payload(domain.MessageTypeDirect, req.Data),
		Hints:   defaultHints(),
	}
}
