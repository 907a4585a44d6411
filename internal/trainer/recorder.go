// internal/trainer/recorder.go
package trainer

// Recorder は1セッション中の回答結果をメモリ上で積み上げるカウンタです。
// I/Oは行わず、セッション完了時にスナップショットを ProgressService へ渡します。
type Recorder struct {
	correct int
	total   int
}

// RecordAnswer は1問分の回答結果を記録します
func (r *Recorder) RecordAnswer(isCorrect bool) {
	r.total++
	if isCorrect {
		r.correct++
	}
}

// Snapshot は現在の (正答数, 回答数) を返します
func (r *Recorder) Snapshot() (correct, total int) {
	return r.correct, r.total
}

// Reset は次のセッションに備えて両カウンタをゼロに戻します
func (r *Recorder) Reset() {
	r.correct = 0
	r.total = 0
}
