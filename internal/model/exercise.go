// internal/model/exercise.go
package model

// ExerciseType は訓練できる聴音エクササイズの種別を表します
type ExerciseType string

const (
	ExerciseInterval    ExerciseType = "interval"    // 音程
	ExerciseChord       ExerciseType = "chord"       // 和音
	ExerciseProgression ExerciseType = "progression" // コード進行
	ExerciseMelody      ExerciseType = "melody"      // メロディ
)

// ExerciseTypes は全種別の固定順リスト (集計テーブルの行順に使用)
var ExerciseTypes = []ExerciseType{
	ExerciseInterval,
	ExerciseChord,
	ExerciseProgression,
	ExerciseMelody,
}

func (t ExerciseType) IsValid() bool {
	switch t {
	case ExerciseInterval, ExerciseChord, ExerciseProgression, ExerciseMelody:
		return true
	}
	return false
}

// Difficulty はエクササイズの難易度を表します
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Difficulties は全難易度の固定順リスト
var Difficulties = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
}

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// ExerciseCatalogEntry はトレーニング画面向けのエクササイズ定義です。
// 静的なメタデータのみで、出題内容（音声）はクライアント側が持ちます。
type ExerciseCatalogEntry struct {
	Type          ExerciseType `json:"type"`
	Difficulty    Difficulty   `json:"difficulty"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	QuestionQuota int          `json:"question_quota"` // 1セッションの出題数
}

// ExerciseCatalog は全エクササイズの定義一覧です
var ExerciseCatalog = []ExerciseCatalogEntry{
	{ExerciseInterval, DifficultyBeginner, "Intervals I", "Major and minor 2nds and 3rds", 10},
	{ExerciseInterval, DifficultyIntermediate, "Intervals II", "Perfect 4ths, 5ths and tritone", 10},
	{ExerciseInterval, DifficultyAdvanced, "Intervals III", "6ths, 7ths and compound intervals", 10},
	{ExerciseChord, DifficultyBeginner, "Chords I", "Major and minor triads", 10},
	{ExerciseChord, DifficultyIntermediate, "Chords II", "Diminished and augmented triads", 10},
	{ExerciseChord, DifficultyAdvanced, "Chords III", "Seventh chords and inversions", 10},
	{ExerciseProgression, DifficultyBeginner, "Progressions I", "I-IV-V in major keys", 8},
	{ExerciseProgression, DifficultyIntermediate, "Progressions II", "ii-V-I and vi substitutions", 8},
	{ExerciseProgression, DifficultyAdvanced, "Progressions III", "Secondary dominants and modulation", 8},
	{ExerciseMelody, DifficultyBeginner, "Melodies I", "Stepwise diatonic phrases", 5},
	{ExerciseMelody, DifficultyIntermediate, "Melodies II", "Leaps and chromatic neighbours", 5},
	{ExerciseMelody, DifficultyAdvanced, "Melodies III", "Modal and extended phrases", 5},
}
