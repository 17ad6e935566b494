package main

import (
	"log"

	"github.com/NickolasCage52/School-MVP/internal/config"
	"github.com/NickolasCage52/School-MVP/internal/database"
	"github.com/NickolasCage52/School-MVP/internal/domain"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.Direction{},
		&domain.Program{},
		&domain.Package{},
		&domain.Lead{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old catalog data (leads are kept)
	log.Println("Cleaning old catalog data...")
	db.Exec("DELETE FROM packages")
	db.Exec("DELETE FROM programs")
	db.Exec("DELETE FROM directions")

	log.Println("Creating directions...")
	marketing := domain.Direction{ID: "dir-marketing", Name: "Маркетинг", Slug: "marketing", OrderNum: 0}
	design := domain.Direction{ID: "dir-design", Name: "Дизайн", Slug: "design", OrderNum: 1}
	db.Create(&marketing)
	db.Create(&design)

	log.Println("Creating programs...")
	progMarketing := domain.Program{
		ID:          "prog-marketing",
		DirectionID: marketing.ID,
		Title:       "Маркетинг и продвижение",
		Subtitle:    "От нуля до первых заказов",
		Slug:        "marketing",
		Tags:        `["маркетинг","SMM","таргет"]`,
		ShortDesc:   "Научитесь запускать рекламу, продвигать проекты в соцсетях и привлекать клиентов. Практика на реальных кейсах.",
		TargetAudience: `["Хотите научиться продвигать свой бизнес",` +
			`"Планируете стать SMM-специалистом",` +
			`"Нужны базовые навыки таргетолога"]`,
		Outcomes: `["Настройка рекламы ВКонтакте и Telegram",` +
			`"Создание контент-планов",` +
			`"Работа с аналитикой и метриками",` +
			`"Сертификат о прохождении"]`,
		Structure: `[{"title":"Основы маркетинга","content":"Введение в digital-маркетинг, каналы продвижения."},` +
			`{"title":"SMM и контент","content":"Ведение соцсетей, создание контента, вовлечение."},` +
			`{"title":"Таргетированная реклама","content":"Настройка кампаний, аудитории, креативы."}]`,
		FAQ: `[{"q":"Нужен ли опыт?","a":"Нет, курс для начинающих."},` +
			`{"q":"Есть ли рассрочка?","a":"Да, можно оплатить в 2–3 платежа."}]`,
		Testimonials: `[{"text":"Отличный курс для старта в маркетинге. Всё по делу, без воды.","author":"Анна К.","role":"Собственный бизнес"}]`,
		Instructors:  `[{"name":"Иван Петров","role":"Head of Marketing","bio":"10+ лет в digital."}]`,
		HowItWorks:   "Онлайн-занятия 2 раза в неделю, домашние задания, разбор кейсов. Доступ к записям на 3 месяца.",
		Duration:     "8 недель",
		Format:       "Онлайн",
		Level:        "Начальный",
		StartDate:    "15 марта",
		OrderNum:     0,
	}
	progDesign := domain.Program{
		ID:          "prog-design",
		DirectionID: design.ID,
		Title:       "Дизайн интерфейсов",
		Subtitle:    "UI/UX с нуля",
		Slug:        "design",
		Tags:        `["дизайн","UI","UX","Figma"]`,
		ShortDesc:   "Освойте Figma, создавайте интерфейсы и прототипы. Подходит тем, кто хочет сменить профессию.",
		Duration:    "12 недель",
		Format:      "Онлайн",
		Level:       "Начальный",
		StartDate:   "1 апреля",
		OrderNum:    0,
	}
	db.Create(&progMarketing)
	db.Create(&progDesign)

	log.Println("Creating packages...")
	packages := []domain.Package{
		{ID: "pkg-basic", ProgramID: progMarketing.ID, Name: "Базовый", Price: 12000,
			Features: `["8 занятий","Записи на 3 месяца","Сертификат"]`, OrderNum: 0},
		{ID: "pkg-pro", ProgramID: progMarketing.ID, Name: "Профессионал", Price: 18000,
			Features: `["Всё из Базового","Практика на своих проектах","Чат с экспертами"]`, Recommended: true, OrderNum: 1},
		{ID: "pkg-d1", ProgramID: progDesign.ID, Name: "Стандарт", Price: 15000,
			Features: `["12 занятий","Портфолио"]`, Recommended: true, OrderNum: 0},
		{ID: "pkg-d2", ProgramID: progDesign.ID, Name: "Премиум", Price: 22000,
			Features: `["Всё из Стандарта","Менторство"]`, OrderNum: 1},
	}
	for i := range packages {
		db.Create(&packages[i])
	}

	log.Println("Seed complete.")
}
