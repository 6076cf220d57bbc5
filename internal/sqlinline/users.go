package sqlinline

const QInsertUser = `--sql 5a2e9f10-7b3c-4d8e-a1f5-2c6b8d041e73
insert into users(id, name, team, role, locale, created_at)
values (gen_random_uuid(), $1::text, $2::text, $3::text, $4::text, now())
returning id, created_at;
`

const QSelectUserByID = `--sql c4d81b2f-0a6e-47c3-9e52-8f1a3b7d60c9
select id, name, team, role, locale, created_at
from users
where id = $1::uuid;
`
