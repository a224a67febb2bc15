// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Supported lists the UI languages; the first is the fallback.
var Supported = []language.Tag{
	language.English,
	language.Italian,
	language.German,
}

type entry struct {
	key string
	msg catalog.Message
}

func text(key, s string) entry { return entry{key: key, msg: catalog.String(s)} }

// count selects the plural form on the first argument and prints the
// second, so counts keep the plain digits of Printer.Count.
func count(key, one, other string) entry {
	return entry{key: key, msg: plural.Selectf(1, "%d", plural.One, one, plural.Other, other)}
}

var translations = map[language.Tag][]entry{
	language.English: {
		text(KeyThreshold, "Threshold"),
		text(KeyPerSecond, "per second"),
		text(KeyIncoming, "Incoming"),
		text(KeyOutgoing, "Outgoing"),
		text(KeyPacketsExceeded, "Packets threshold exceeded"),
		count(KeyPacketsExceededValue, "%[2]s packet has been exchanged", "%[2]s packets have been exchanged"),
		text(KeyBytesExceeded, "Bytes threshold exceeded"),
		text(KeyBytesExceededValue, "%s have been exchanged"),
		text(KeyFavoriteTransmitted, "New data exchanged from favorites"),
		text(KeyClearAll, "Clear all"),
		text(KeyOnlyLast30, "Only the last 30 notifications are displayed"),
		text(KeyNoNotificationsSet, "Notifications have not been configured yet"),
		text(KeyNoNotificationsReceived, "Nothing to show at the moment"),
		text(KeyOpenSettings, "Press %s to open the notification settings"),
		text(KeyNotifications, "Notifications"),
		text(KeyConfirmClearAll, "Delete all notifications?"),
		text(KeySettings, "Settings"),
		text(KeyCancel, "Cancel"),
		text(KeyPacketsThreshold, "Packets threshold (per second)"),
		text(KeyBytesThreshold, "Bytes threshold (per second)"),
		text(KeyNotifyOnFavorite, "Notify when favorites exchange data"),
		text(KeyLeaveEmptyToDisable, "Leave empty to disable"),
		text(KeySettingsSaved, "Settings saved"),
		text(KeyNotConfigured, "not set"),
	},
	language.Italian: {
		text(KeyThreshold, "Soglia"),
		text(KeyPerSecond, "al secondo"),
		text(KeyIncoming, "In entrata"),
		text(KeyOutgoing, "In uscita"),
		text(KeyPacketsExceeded, "Soglia di pacchetti superata"),
		count(KeyPacketsExceededValue, "%[2]s pacchetto è stato scambiato", "%[2]s pacchetti sono stati scambiati"),
		text(KeyBytesExceeded, "Soglia di byte superata"),
		text(KeyBytesExceededValue, "%s sono stati scambiati"),
		text(KeyFavoriteTransmitted, "Nuovi dati scambiati dai preferiti"),
		text(KeyClearAll, "Elimina tutto"),
		text(KeyOnlyLast30, "Sono mostrate solo le ultime 30 notifiche"),
		text(KeyNoNotificationsSet, "Le notifiche non sono ancora state configurate"),
		text(KeyNoNotificationsReceived, "Nulla da mostrare al momento"),
		text(KeyOpenSettings, "Premi %s per aprire le impostazioni delle notifiche"),
		text(KeyNotifications, "Notifiche"),
		text(KeyConfirmClearAll, "Eliminare tutte le notifiche?"),
		text(KeySettings, "Impostazioni"),
		text(KeyCancel, "Annulla"),
		text(KeyPacketsThreshold, "Soglia di pacchetti (al secondo)"),
		text(KeyBytesThreshold, "Soglia di byte (al secondo)"),
		text(KeyNotifyOnFavorite, "Notifica quando i preferiti scambiano dati"),
		text(KeyLeaveEmptyToDisable, "Lascia vuoto per disattivare"),
		text(KeySettingsSaved, "Impostazioni salvate"),
		text(KeyNotConfigured, "non impostata"),
	},
	language.German: {
		text(KeyThreshold, "Schwellenwert"),
		text(KeyPerSecond, "pro Sekunde"),
		text(KeyIncoming, "Eingehend"),
		text(KeyOutgoing, "Ausgehend"),
		text(KeyPacketsExceeded, "Paket-Schwellenwert überschritten"),
		count(KeyPacketsExceededValue, "%[2]s Paket wurde ausgetauscht", "%[2]s Pakete wurden ausgetauscht"),
		text(KeyBytesExceeded, "Byte-Schwellenwert überschritten"),
		text(KeyBytesExceededValue, "%s wurden ausgetauscht"),
		text(KeyFavoriteTransmitted, "Neue Daten von Favoriten ausgetauscht"),
		text(KeyClearAll, "Alle löschen"),
		text(KeyOnlyLast30, "Es werden nur die letzten 30 Benachrichtigungen angezeigt"),
		text(KeyNoNotificationsSet, "Benachrichtigungen wurden noch nicht konfiguriert"),
		text(KeyNoNotificationsReceived, "Im Moment gibt es nichts anzuzeigen"),
		text(KeyOpenSettings, "Drücke %s, um die Benachrichtigungseinstellungen zu öffnen"),
		text(KeyNotifications, "Benachrichtigungen"),
		text(KeyConfirmClearAll, "Alle Benachrichtigungen löschen?"),
		text(KeySettings, "Einstellungen"),
		text(KeyCancel, "Abbrechen"),
		text(KeyPacketsThreshold, "Paket-Schwellenwert (pro Sekunde)"),
		text(KeyBytesThreshold, "Byte-Schwellenwert (pro Sekunde)"),
		text(KeyNotifyOnFavorite, "Benachrichtigen, wenn Favoriten Daten austauschen"),
		text(KeyLeaveEmptyToDisable, "Leer lassen zum Deaktivieren"),
		text(KeySettingsSaved, "Einstellungen gespeichert"),
		text(KeyNotConfigured, "nicht gesetzt"),
	},
}

// NewCatalog builds the message catalog for every supported language.
func NewCatalog() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(Supported[0]))
	for tag, entries := range translations {
		for _, e := range entries {
			if err := b.Set(tag, e.key, e.msg); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}
