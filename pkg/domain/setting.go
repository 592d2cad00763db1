package domain

// setting keys used by jobs; read from the store on every invocation so edits
// apply on the next tick without restart
const (
	SettingWebhookURL     = "webhook_url"
	SettingTaskWebhookURL = "task_webhook_url"
	SettingMentionID      = "mention_id"
	SettingAPIKey         = "summary_api_key"
	SettingQuotaLimit     = "summary_quota_limit"
	SettingAutoSendNews   = "auto_send_news"
	SettingAutoRemind     = "auto_task_reminders"
	SettingRemindTime     = "remind_time"
	SettingRolloverTime   = "rollover_time"
)
