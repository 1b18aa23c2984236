// Package contact содержит доменную модель контакта адресной книги.
//
// Это ядро бизнес-логики системы "Contact Dedup Hub". Пакет определяет:
//
//   - Value Objects: Email, Phone - канонические, сравнимые значения
//   - Сущность (Entity): Contact - агрегат полей контакта
//   - Field - перечисление полей, участвующих в слиянии дубликатов
//
// # Архитектурные принципы
//
// Пакет следует принципам Clean Architecture и DDD:
//
//  1. Минимум внешних зависимостей - только стандартная библиотека и x/text
//  2. Канонические значения - Email и Phone неизменяемы после создания,
//     их равенство не зависит от форматирования исходного ввода
//  3. Мягкий разбор против строгого создания - Parse* возвращает ok=false
//     на некорректном вводе, New* возвращает ошибку ErrInvalidFormat
//
// # Основные типы
//
// Email - адрес электронной почты:
//
//	email, ok := contact.ParseEmail("  ivanov@example.com ")
//	// ok == true, email.Address() == "ivanov@example.com"
//
// Phone - телефонный номер национального формата (код страны 7):
//
//	phone, ok := contact.ParseNational("+7 (999) 111-22-33 доб.4")
//	// ok == true, phone.String() == "+7(999)111-22-33 доб.4"
//
// Contact - агрегат контакта; телефон и почта необязательны:
//
//	c := &contact.Contact{LastName: "Иванов", FirstName: "Иван"}
//	c.Phone = &phone
package contact
