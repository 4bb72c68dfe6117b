package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// --- API 请求/响应模型 ---

type UpsertProfileRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photoURL"`
	FitnessGoal string `json:"fitnessGoal"`
	HealthFocus string `json:"healthFocus"`
}

type ProfileResponse struct {
	UID      string `json:"uid"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
}

// --- 控制器函数 ---

// GetMe 返回当前用户的展示资料。
// 尚未完成注册的用户会得到404，前端据此跳转到引导流程。
func GetMe(c *gin.Context) {
	userID := c.GetString(UserIDKey)
	if userID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "用户尚未完成注册"})
		return
	}

	profile, err := GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取用户资料失败"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "用户尚未完成注册"})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		UID:      userID,
		Name:     profile.Name,
		Email:    profile.Email,
		PhotoURL: profile.PhotoURL,
	})
}

// UpsertMe 完成引导流程：登记或更新当前用户的资料。
func UpsertMe(c *gin.Context) {
	userID := c.GetString(UserIDKey)
	if !IsValidUUID(userID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少有效的用户标识"})
		return
	}

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体格式无效"})
		return
	}

	profile := Profile{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	}
	if err := ActivateUser(userID, profile, req.FitnessGoal, req.HealthFocus); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存用户资料失败"})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		UID:      userID,
		Name:     profile.Name,
		Email:    profile.Email,
		PhotoURL: profile.PhotoURL,
	})
}
