// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package i18n

// Message keys used by the notifications page.
const (
	KeyThreshold               = "threshold"
	KeyPerSecond               = "per_second"
	KeyIncoming                = "incoming"
	KeyOutgoing                = "outgoing"
	KeyPacketsExceeded         = "packets_exceeded"
	KeyPacketsExceededValue    = "packets_exceeded_value"
	KeyBytesExceeded           = "bytes_exceeded"
	KeyBytesExceededValue      = "bytes_exceeded_value"
	KeyFavoriteTransmitted     = "favorite_transmitted"
	KeyClearAll                = "clear_all"
	KeyOnlyLast30              = "only_last_30"
	KeyNoNotificationsSet      = "no_notifications_set"
	KeyNoNotificationsReceived = "no_notifications_received"
	KeyOpenSettings            = "open_settings"
	KeyNotifications           = "notifications"
	KeyConfirmClearAll         = "confirm_clear_all"
	KeySettings                = "settings"
	KeyCancel                  = "cancel"
	KeyPacketsThreshold        = "packets_threshold"
	KeyBytesThreshold          = "bytes_threshold"
	KeyNotifyOnFavorite        = "notify_on_favorite"
	KeyLeaveEmptyToDisable     = "leave_empty_to_disable"
	KeySettingsSaved           = "settings_saved"
	KeyNotConfigured           = "not_configured"
)

// Keys lists every key; each supported language translates all of them.
var Keys = []string{
	KeyThreshold,
	KeyPerSecond,
	KeyIncoming,
	KeyOutgoing,
	KeyPacketsExceeded,
	KeyPacketsExceededValue,
	KeyBytesExceeded,
	KeyBytesExceededValue,
	KeyFavoriteTransmitted,
	KeyClearAll,
	KeyOnlyLast30,
	KeyNoNotificationsSet,
	KeyNoNotificationsReceived,
	KeyOpenSettings,
	KeyNotifications,
	KeyConfirmClearAll,
	KeySettings,
	KeyCancel,
	KeyPacketsThreshold,
	KeyBytesThreshold,
	KeyNotifyOnFavorite,
	KeyLeaveEmptyToDisable,
	KeySettingsSaved,
	KeyNotConfigured,
}
