package redis

import (
	"go.uber.org/zap"
)

// cacheTask 캐시 갱신 작업. 실행할 클로저를 담는다
type cacheTask struct {
	fn func()
}

var cacheTaskChan chan cacheTask

// InitCacheWorker 캐시 갱신 Worker Pool 기동
// DB 쓰기 후 캐시 무효화 같은 부수 작업을 요청 처리 경로 밖에서 수행한다
func InitCacheWorker(workerCnt int, queueSize int) {
	cacheTaskChan = make(chan cacheTask, queueSize)
	for i := 0; i < workerCnt; i++ {
		go startWorker(i)
	}
}

// SubmitCacheTask 작업 제출. 큐가 가득 차면 동기로 직접 실행한다 (작업 유실 방지)
func SubmitCacheTask(fn func()) {
	if cacheTaskChan == nil {
		fn()
		return
	}
	select {
	case cacheTaskChan <- cacheTask{fn: fn}:
	default:
		zap.L().Warn("cache task queue full, running synchronously")
		fn()
	}
}

// startWorker Worker 루프. panic 이 나면 로그를 남기고 Worker 를 재기동한다
func startWorker(id int) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("cache worker panic, restarting", zap.Int("worker", id), zap.Any("recover", r))
			go startWorker(id)
		}
	}()
	for task := range cacheTaskChan {
		task.fn()
	}
}
