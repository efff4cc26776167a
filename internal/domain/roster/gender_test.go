package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPatronymic_Female(t *testing.T) {
	cases := []string{
		"Ивановна",
		"Сергеевна",
		"Никитична",
		"Ильинична",
	}

	for _, patronymic := range cases {
		assert.Equal(t, GenderFemale, ClassifyPatronymic(patronymic), patronymic)
	}
}

func TestClassifyPatronymic_Male(t *testing.T) {
	cases := []string{
		"Иванович",
		"Сергеевич",
		"Ильич",
		"Руслан-Бекович",
		"Руслан–Бекович",
	}

	for _, patronymic := range cases {
		assert.Equal(t, GenderMale, ClassifyPatronymic(patronymic), patronymic)
	}
}

func TestClassifyPatronymic_Unknown(t *testing.T) {
	cases := []string{
		"",
		"Xyz",
		"Smith",
		"Оглы",
		"ич",
	}

	for _, patronymic := range cases {
		assert.Equal(t, GenderUnknown, ClassifyPatronymic(patronymic), patronymic)
	}
}

func TestClassifyPatronymic_FemaleSuffixAnywhereInPhrase(t *testing.T) {
	// Женский суффикс ищется по любому слову отчества,
	// мужской - только по слову в начале строки.
	assert.Equal(t, GenderFemale, ClassifyPatronymic("Кызы Ивановна"))
	assert.Equal(t, GenderUnknown, ClassifyPatronymic("Кызы Иванович"))
}

func TestClassifyPatronymic_HyphenSegmentsFemale(t *testing.T) {
	// Дефис и тире - границы слов: женский суффикс ищется по каждому
	// сегменту составного отчества.
	assert.Equal(t, GenderFemale, ClassifyPatronymic("Анна-Петровна"))
	assert.Equal(t, GenderFemale, ClassifyPatronymic("Кызы-Ивановна"))
	assert.Equal(t, GenderFemale, ClassifyPatronymic("Кызы–Ивановна"))
}

func TestClassifyPatronymic_LeadingJoinerBlocksMale(t *testing.T) {
	// Мужское слово обязано начинаться с кириллической буквы.
	assert.Equal(t, GenderUnknown, ClassifyPatronymic("-Иванович"))
	assert.Equal(t, GenderUnknown, ClassifyPatronymic("–Иванович"))
}

func TestGender_IsValid(t *testing.T) {
	assert.True(t, GenderFemale.IsValid())
	assert.True(t, GenderMale.IsValid())
	assert.True(t, GenderUnknown.IsValid())
	assert.False(t, Gender("other").IsValid())
}
