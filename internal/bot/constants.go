package bot

// MENU LABELS

const (
	LabelSchedule    = "Режим работы"
	LabelContacts    = "Контакты"
	LabelDocuments   = "Интересные документы"
	LabelExhibitions = "Выставки"
	LabelRequest     = "Как подать запрос?"
	LabelAsk         = "Задать вопрос"

	CommandStart = "start"
	CommandHelp  = "help"
)

const parseModeHTML = "HTML"

// REPLY TEXTS

const (
	welcomeText = "Привет! 👋 Я официальный бот Муниципального архива города Сургута.\n\n" +
		"Выберите интересующую вас тему:"

	scheduleText = "🕒 <b>Режим работы архива:</b>\n" +
		"Пн–Пт: 9:00–17:12\n" +
		"Обед: 13:00–14:00\n" +
		"Сб, Вс — выходной"

	contactsText = "📍 <b>Контактная информация:</b>\n" +
		"Адрес: г. Сургут, ул. Мелик-Карамова, д. 4/4\n" +
		"Телефон приёмной: +7 (3462) 550-496\n" +
		"Email: arhiv@admsurgut.ru"

	documentsText = "📜 <b>Интересные архивные документы:</b>\n\n" +
		"• <b>10.12.1930</b> — постановление об образовании " +
		"<b>Остяко-Вогульского национального округа</b> — основы современного ХМАО–Югры.\n\n" +
		"• <b>04.02.1925</b> — выписка о <b>понижении статуса Сургута до сельского поселения</b>."

	exhibitionsText = "🖼️ <b>Актуальные выставки:</b>\n\n" +
		"• «Сургутские грани» — 16.06.2025\n" +
		"• «Великая Победа» — 25.04.2025\n" +
		"• «День геолога» — 06.04.2025\n" +
		"• «Раритеты Югры» — 21.03.2025"

	requestText = "ℹ️ Официальные архивные справки и копии документов оформляются " +
		"<b>только через портал Госуслуг</b>:\n" +
		"🔗 https://www.gosuslugi.ru/600149/1/form"

	askPromptText = "💬 Напишите ваш вопрос.\n\n" +
		"<b>Внимание!</b> Сообщения с персональными данными " +
		"(ФИО, паспорт, ИНН и т.д.) <b>не рассматриваются</b>."

	answerAckText = "Спасибо за вопрос! Для официальных запросов используйте портал Госуслуг."

	unknownCommandText = "Команда не распознана. Используйте кнопки меню или /start."

	useMenuText = "Пожалуйста, используйте кнопки меню.\n" +
		"Я не обрабатываю персональные данные."

	adminQuestionText = "❓ <b>Новый вопрос</b> от %s (id %d):\n\n%s"
)
