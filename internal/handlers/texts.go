package handlers

const (
	txtInvalidFormat  = "Неправильний формат. Приклад: /ringfit 1h 26m 36s, 155 kcal, 2.5 km"
	txtNoEntries      = "Ти ще не додав жодного тренування!"
	txtNobodyLogged   = "Ніхто не додав жодного тренування! 😨"
	txtRatingsHeader  = "Рейтинги:"
	txtLatestDeleted  = "Останнє тренування видалено!"
	txtRenamed        = "Імʼя оновлено!"
	txtPhotoReceived  = "Фото отримано!"
	txtPhotoFailed    = "Не вдалося розпізнати тренування на фото 😞"
	txtSaveFailed     = "Не вдалося зберегти тренування, спробуй ще раз."
	txtRatingsFailed  = "Помилка при обрахунку рейтингу."
	txtResultsFailed  = "Не вдалося отримати результати, спробуй ще раз."
)
