package bot

// mainMenuRows is the root keyboard layout, two buttons per row.
var mainMenuRows = [][]string{
	{LabelSchedule, LabelContacts},
	{LabelDocuments, LabelExhibitions},
	{LabelRequest, LabelAsk},
}

func MainMenuKeyboard() *Keyboard {
	rows := make([][]string, len(mainMenuRows))
	for i, row := range mainMenuRows {
		rows[i] = append([]string(nil), row...)
	}
	return &Keyboard{Rows: rows, Resize: true}
}

func htmlReply(text string) Reply {
	return Reply{Text: text, ParseMode: parseModeHTML}
}

// static returns a handler that always answers with text.
func static(text string) Handler {
	return func(Message) Result {
		return Result{Reply: htmlReply(text)}
	}
}

func handleWelcome(Message) Result {
	r := htmlReply(welcomeText)
	r.Keyboard = MainMenuKeyboard()
	return Result{Reply: r}
}

func handleAsk(Message) Result {
	return Result{Reply: htmlReply(askPromptText), Transition: TransitionAwait}
}

// DefaultMenu builds the archive menu: six labels plus /start and /help.
func DefaultMenu(botUsername string) (*Menu, error) {
	return NewMenu(botUsername,
		[]MenuEntry{
			{Label: LabelSchedule, Handler: static(scheduleText)},
			{Label: LabelContacts, Handler: static(contactsText)},
			{Label: LabelDocuments, Handler: static(documentsText)},
			{Label: LabelExhibitions, Handler: static(exhibitionsText)},
			{Label: LabelRequest, Handler: static(requestText)},
			{Label: LabelAsk, Handler: handleAsk},
		},
		[]CommandEntry{
			{Name: CommandStart, Handler: handleWelcome},
			{Name: CommandHelp, Handler: handleWelcome},
		},
	)
}

func DefaultFallbacks() Fallbacks {
	return Fallbacks{
		Answer:         static(answerAckText),
		UnknownCommand: static(unknownCommandText),
		Text:           static(useMenuText),
	}
}
