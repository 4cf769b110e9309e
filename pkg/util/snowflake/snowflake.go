package snowflake

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

var (
	node     *snowflake.Node
	nodeOnce sync.Once
	// machineID 는 Init 이전에 설정되어야 한다. 분산 배포 시 인스턴스마다 고유해야 한다
	machineID int64 = 1
)

// Init 스노우플레이크 노드 초기화
// 프로그램 시작 시 한 번 호출한다
func Init(id int64) {
	nodeOnce.Do(func() {
		if id < 0 || id > 1023 {
			id = 1
			zap.L().Warn("snowflake machineId 범위 초과, 기본값 1 사용")
		}
		machineID = id
		var err error
		node, err = snowflake.NewNode(machineID)
		if err != nil {
			zap.L().Fatal("snowflake 노드 초기화 실패", zap.Error(err))
		}
	})
}

// GenerateID 스노우플레이크 ID 생성 (int64)
func GenerateID() int64 {
	if node == nil {
		Init(machineID)
	}
	return node.Generate().Int64()
}
