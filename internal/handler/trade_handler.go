// 거래 API
package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/dto/request"
	"github.com/prgrms-be-devcourse/NBE6-8-2-Team10-sub000/internal/service"
)

// TradeHandler 거래 요청 처리기
type TradeHandler struct {
	tradeSvc service.TradeService
}

// NewTradeHandler 생성자
func NewTradeHandler(tradeSvc service.TradeService) *TradeHandler {
	return &TradeHandler{tradeSvc: tradeSvc}
}

// Create 거래 체결
// POST /api/trades
func (h *TradeHandler) Create(c *gin.Context) {
	var req request.CreateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.tradeSvc.CreateTrade(CurrentMemberId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, fmt.Sprintf("%d번 거래가 생성되었습니다.", data.Id), data)
}

// Get 거래 단건 조회
// GET /api/trades/:tradeId
func (h *TradeHandler) Get(c *gin.Context) {
	tradeId, err := ParseUintParam(c, "tradeId")
	if err != nil {
		HandleError(c, err)
		return
	}
	data, err := h.tradeSvc.GetTrade(CurrentMemberId(c), tradeId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, "조회되었습니다.", data)
}

// MyList 내 거래 목록
// GET /api/trades/me
func (h *TradeHandler) MyList(c *gin.Context) {
	data, err := h.tradeSvc.GetMyTrades(CurrentMemberId(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, "조회되었습니다.", data)
}
